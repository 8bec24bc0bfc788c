// Package transcribe provides the speech-to-text engine boundary and the
// Whisper CLI implementation behind it.
//
// The engine is an opaque collaborator: it receives an audio file path and
// a language setting and returns timed text segments. Model internals are
// out of scope.
package transcribe

import (
	"context"
	"fmt"
)

// Segment is a single timestamped span of recognized speech.
//
// Start and End are offsets in seconds from the beginning of the audio.
// Within one file, segments arrive in chronological order with
// non-decreasing start offsets.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Engine converts an audio file into an ordered sequence of segments.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) ([]Segment, error)
}

// TranscriptionError reports a failed transcription for one audio asset.
// It is recoverable at the per-file level: the batch records it and
// moves on to the next file.
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

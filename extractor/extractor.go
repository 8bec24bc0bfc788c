package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ExtractionError reports a failed audio extraction for one video file.
// It is recoverable at the per-file level: the batch records it and
// moves on to the next file.
type ExtractionError struct {
	VideoPath string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("audio extraction failed for %s: %v", e.VideoPath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// AudioExtractor converts a video file into a temporary audio asset.
//
// Extract creates a filesystem entry but never deletes it; cleanup is
// the caller's responsibility, scoped to the whole per-file step.
type AudioExtractor interface {
	Extract(ctx context.Context, videoPath string) (string, error)
}

// Extractor extracts mono 16 kHz WAV audio via ffmpeg into a temp directory.
type Extractor struct {
	tempDir string
}

// NewExtractor creates an Extractor that writes WAV files into tempDir.
// An empty tempDir falls back to the system temp directory.
func NewExtractor(tempDir string) *Extractor {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Extractor{tempDir: tempDir}
}

// Extract pulls the audio track out of videoPath into a freshly named
// temporary WAV file and returns its path.
//
// The output name carries a random suffix so sequential or concurrent
// runs over the same folder never collide. Returns an *ExtractionError
// if ffmpeg fails or produces no output file.
func (e *Extractor) Extract(ctx context.Context, videoPath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(e.tempDir, fmt.Sprintf("%s_%s.wav", stem, uuid.NewString()))

	builder := NewWavBuilder(videoPath, audioPath)
	if err := builder.Run(ctx); err != nil {
		return "", &ExtractionError{VideoPath: videoPath, Err: err}
	}

	// ffmpeg can exit zero without writing anything for some inputs
	if _, err := os.Stat(audioPath); err != nil {
		return "", &ExtractionError{VideoPath: videoPath, Err: fmt.Errorf("no output file produced: %w", err)}
	}

	return audioPath, nil
}

package models

import (
	"fmt"
	"strings"
)

// TranscriptRow is a single CSV data row: one transcript segment flattened
// to (file name, time in minutes, text).
//
// TimeMins is preformatted with exactly two decimal digits so the sink
// writes it verbatim. Rows are append-only and never mutated after being
// handed to the sink.
type TranscriptRow struct {
	FileName string
	TimeMins string
	Text     string
}

// NewTranscriptRow creates a TranscriptRow with validation.
//
// Returns an error if the file name or text is empty. Text may contain
// commas, quotes, and newlines; escaping is the sink's concern.
func NewTranscriptRow(fileName, timeMins, text string) (TranscriptRow, error) {
	if strings.TrimSpace(fileName) == "" {
		return TranscriptRow{}, fmt.Errorf("invalid row: file name cannot be empty")
	}
	if timeMins == "" {
		return TranscriptRow{}, fmt.Errorf("invalid row: time cannot be empty")
	}
	if text == "" {
		return TranscriptRow{}, fmt.Errorf("invalid row: text cannot be empty")
	}

	return TranscriptRow{
		FileName: fileName,
		TimeMins: timeMins,
		Text:     text,
	}, nil
}

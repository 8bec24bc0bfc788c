// Package csvout writes transcript rows to a CSV artifact.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"

	"transcriber/models"
)

// Header is the fixed three-column CSV header, written exactly once
// before any data row.
var Header = []string{"File Name", "Time (mins)", "Transcribed Text"}

// SinkError reports that the output artifact cannot be produced. It is
// the one fatal-at-run-level error class: a partially writable output is
// not a recoverable per-file condition.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("output sink failed for %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// Sink accumulates transcript rows and persists them.
//
// Rows are appended in the exact order received; the sink performs no
// reordering, deduplication, or aggregation.
type Sink interface {
	Open(path string) error
	WriteRow(row models.TranscriptRow) error
	Close() error
}

// CsvSink writes UTF-8 CSV with RFC 4180 quoting via encoding/csv.
// Text containing commas, quotes, or newlines is escaped by the writer;
// non-Latin scripts pass through without transliteration.
type CsvSink struct {
	file   *os.File
	writer *csv.Writer
	path   string
}

// NewCsvSink creates an unopened CsvSink.
func NewCsvSink() *CsvSink {
	return &CsvSink{}
}

// Open creates (or overwrites) the CSV file at path and writes the header.
func (s *CsvSink) Open(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &SinkError{Path: path, Err: err}
	}

	s.file = file
	s.writer = csv.NewWriter(file)
	s.path = path

	if err := s.writer.Write(Header); err != nil {
		file.Close()
		return &SinkError{Path: path, Err: fmt.Errorf("failed to write header: %w", err)}
	}

	return nil
}

// WriteRow appends one data row.
func (s *CsvSink) WriteRow(row models.TranscriptRow) error {
	if s.writer == nil {
		return &SinkError{Path: s.path, Err: fmt.Errorf("sink is not open")}
	}

	record := []string{row.FileName, row.TimeMins, row.Text}
	if err := s.writer.Write(record); err != nil {
		return &SinkError{Path: s.path, Err: err}
	}

	return nil
}

// Close flushes buffered rows and closes the file. Flush errors (disk
// full, broken pipe) surface here as a SinkError.
func (s *CsvSink) Close() error {
	if s.writer == nil {
		return nil
	}

	s.writer.Flush()
	flushErr := s.writer.Error()
	closeErr := s.file.Close()

	s.writer = nil
	s.file = nil

	if flushErr != nil {
		return &SinkError{Path: s.path, Err: flushErr}
	}
	if closeErr != nil {
		return &SinkError{Path: s.path, Err: closeErr}
	}

	return nil
}

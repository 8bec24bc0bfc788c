package models

import (
	"fmt"
	"strings"
	"time"
)

// FileResult represents the outcome of processing a single video file.
//
// This structure is used to track both successful and failed files. It
// enforces logical consistency: successful results must record the emitted
// segment count and no error, while failed results must carry an error.
//
// Use NewFileResultSuccess or NewFileResultFailure to create validated instances.
type FileResult struct {
	FileName string `json:"file_name"`
	Segments int    `json:"segments"`
	Success  bool   `json:"success"`
	Error    error  `json:"error"`
}

// NewFileResultSuccess creates a successful FileResult with validation.
//
// Returns an error if fileName is empty or segments is negative.
func NewFileResultSuccess(fileName string, segments int) (*FileResult, error) {
	fr := &FileResult{
		FileName: fileName,
		Segments: segments,
		Success:  true,
		Error:    nil,
	}
	if err := fr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid file result: %w", err)
	}
	return fr, nil
}

// NewFileResultFailure creates a failed FileResult with validation.
//
// The error parameter must not be nil.
func NewFileResultFailure(fileName string, procError error) (*FileResult, error) {
	if procError == nil {
		return nil, fmt.Errorf("invalid file result: error cannot be nil for failed result")
	}
	fr := &FileResult{
		FileName: fileName,
		Segments: 0,
		Success:  false,
		Error:    procError,
	}
	if err := fr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid file result: %w", err)
	}
	return fr, nil
}

// Validate checks if the FileResult has consistent state.
//
// Returns an error if:
//   - FileName is empty or whitespace-only
//   - Success is true but Error is not nil (inconsistent)
//   - Success is false but Error is nil (must have failure reason)
//   - Success is false but Segments is non-zero (failed files emit no rows)
//   - Segments is negative
func (fr *FileResult) Validate() error {
	if strings.TrimSpace(fr.FileName) == "" {
		return fmt.Errorf("file_name cannot be empty")
	}

	if fr.Success && fr.Error != nil {
		return fmt.Errorf("inconsistent state: Success is true but Error is not nil")
	}

	if !fr.Success && fr.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if !fr.Success && fr.Segments != 0 {
		return fmt.Errorf("failed result must not have segments")
	}

	if fr.Segments < 0 {
		return fmt.Errorf("segments cannot be negative")
	}

	return nil
}

// RunSummary aggregates the outcome of a whole batch run.
//
// The pipeline always completes with a summary unless a fatal error
// (configuration or sink) aborts the run; per-file failures are recorded
// here rather than propagated.
type RunSummary struct {
	FilesProcessed int           `json:"files_processed"`
	FilesFailed    int           `json:"files_failed"`
	RowsEmitted    int           `json:"rows_emitted"`
	Results        []*FileResult `json:"results"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Add records a per-file result and updates the counters.
func (rs *RunSummary) Add(result *FileResult) {
	rs.Results = append(rs.Results, result)
	if result.Success {
		rs.FilesProcessed++
		rs.RowsEmitted += result.Segments
	} else {
		rs.FilesFailed++
	}
}

// Failures returns the results for files that failed processing.
func (rs *RunSummary) Failures() []*FileResult {
	var failed []*FileResult
	for _, r := range rs.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

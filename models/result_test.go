package models

import (
	"fmt"
	"testing"
)

func TestNewFileResultSuccess(t *testing.T) {
	result, err := NewFileResultSuccess("video1.mp4", 12)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("Expected success to be true")
	}
	if result.Segments != 12 {
		t.Errorf("Expected 12 segments, got %d", result.Segments)
	}
	if result.Error != nil {
		t.Errorf("Expected nil error, got %v", result.Error)
	}
}

func TestNewFileResultSuccess_ZeroSegments(t *testing.T) {
	// A file can transcribe successfully with no speech in it
	result, err := NewFileResultSuccess("silent.mp4", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Segments != 0 {
		t.Errorf("Expected 0 segments, got %d", result.Segments)
	}
}

func TestNewFileResultSuccess_EmptyName(t *testing.T) {
	_, err := NewFileResultSuccess("", 3)
	if err == nil {
		t.Error("Expected error for empty file name")
	}
}

func TestNewFileResultFailure(t *testing.T) {
	procErr := fmt.Errorf("ffmpeg exited with status 1")
	result, err := NewFileResultFailure("broken.mov", procErr)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Success {
		t.Error("Expected success to be false")
	}
	if result.Error == nil {
		t.Error("Expected non-nil error")
	}
	if result.Segments != 0 {
		t.Errorf("Expected 0 segments for failure, got %d", result.Segments)
	}
}

func TestNewFileResultFailure_NilError(t *testing.T) {
	_, err := NewFileResultFailure("broken.mov", nil)
	if err == nil {
		t.Error("Expected error when failure has nil error")
	}
}

func TestFileResultValidate(t *testing.T) {
	tests := []struct {
		name        string
		result      FileResult
		expectError bool
	}{
		{
			name:   "valid success",
			result: FileResult{FileName: "a.mp4", Segments: 5, Success: true},
		},
		{
			name:   "valid failure",
			result: FileResult{FileName: "a.mp4", Success: false, Error: fmt.Errorf("boom")},
		},
		{
			name:        "success with error",
			result:      FileResult{FileName: "a.mp4", Success: true, Error: fmt.Errorf("boom")},
			expectError: true,
		},
		{
			name:        "failure without error",
			result:      FileResult{FileName: "a.mp4", Success: false},
			expectError: true,
		},
		{
			name:        "failure with segments",
			result:      FileResult{FileName: "a.mp4", Segments: 3, Success: false, Error: fmt.Errorf("boom")},
			expectError: true,
		},
		{
			name:        "negative segments",
			result:      FileResult{FileName: "a.mp4", Segments: -1, Success: true},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestRunSummary_Add(t *testing.T) {
	var summary RunSummary

	ok1, _ := NewFileResultSuccess("a.mp4", 4)
	ok2, _ := NewFileResultSuccess("b.mov", 7)
	bad, _ := NewFileResultFailure("c.mp4", fmt.Errorf("transcription failed"))

	summary.Add(ok1)
	summary.Add(bad)
	summary.Add(ok2)

	if summary.FilesProcessed != 2 {
		t.Errorf("Expected 2 files processed, got %d", summary.FilesProcessed)
	}
	if summary.FilesFailed != 1 {
		t.Errorf("Expected 1 file failed, got %d", summary.FilesFailed)
	}
	if summary.RowsEmitted != 11 {
		t.Errorf("Expected 11 rows emitted, got %d", summary.RowsEmitted)
	}
	if len(summary.Results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(summary.Results))
	}
}

func TestRunSummary_Failures(t *testing.T) {
	var summary RunSummary

	ok, _ := NewFileResultSuccess("a.mp4", 4)
	bad, _ := NewFileResultFailure("c.mp4", fmt.Errorf("extraction failed"))
	summary.Add(ok)
	summary.Add(bad)

	failures := summary.Failures()
	if len(failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(failures))
	}
	if failures[0].FileName != "c.mp4" {
		t.Errorf("Expected failure for 'c.mp4', got '%s'", failures[0].FileName)
	}
}

package config

import (
	"os"
	"testing"
)

func TestMergeFromFlags_FolderArgument(t *testing.T) {
	os.Args = []string{"transcriber", "./videos"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Expected no error with folder argument, got: %v", err)
	}

	if cfg.Folder != "./videos" {
		t.Errorf("Expected folder './videos', got '%s'", cfg.Folder)
	}
}

func TestMergeFromFlags_MissingFolder(t *testing.T) {
	// Test missing folder - MergeFromFlags doesn't validate, but folder should remain empty
	os.Args = []string{"transcriber", "-output", "out.csv"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Validation should fail
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for missing folder, got nil")
	}
}

func TestMergeFromFlags_TooManyArguments(t *testing.T) {
	os.Args = []string{"transcriber", "./videos", "./more-videos"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err == nil {
		t.Fatal("Expected error for two folder arguments, got nil")
	}
}

func TestMergeFromFlags_AllFlags(t *testing.T) {
	os.Args = []string{
		"transcriber",
		"-output", "lectures.csv",
		"-language", "th",
		"-model", "medium",
		"-extract-timeout", "120",
		"-transcribe-timeout", "900",
		"-no-sort",
		"-verbose",
		"./videos",
	}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Verify all flags were parsed
	if cfg.Folder != "./videos" {
		t.Errorf("Expected folder './videos', got '%s'", cfg.Folder)
	}
	if cfg.Output != "lectures.csv" {
		t.Errorf("Expected output 'lectures.csv', got '%s'", cfg.Output)
	}
	if cfg.Language != "th" {
		t.Errorf("Expected language 'th', got '%s'", cfg.Language)
	}
	if cfg.Model != "medium" {
		t.Errorf("Expected model 'medium', got '%s'", cfg.Model)
	}
	if cfg.ExtractTimeout != 120 {
		t.Errorf("Expected extract timeout 120, got %d", cfg.ExtractTimeout)
	}
	if cfg.TranscribeTimeout != 900 {
		t.Errorf("Expected transcribe timeout 900, got %d", cfg.TranscribeTimeout)
	}
	if cfg.SortFiles {
		t.Error("Expected sort files false, got true")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose true, got false")
	}
}

func TestMergeFromFlags_DryRun(t *testing.T) {
	os.Args = []string{
		"transcriber",
		"-dry-run",
		"./videos",
	}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.DryRun {
		t.Error("Expected dry-run true, got false")
	}
}

func TestMergeFromFlags_Check(t *testing.T) {
	os.Args = []string{"transcriber", "-check"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.CheckSetup {
		t.Error("Expected check setup true, got false")
	}
}

func TestMergeFromFlags_PartialOverride(t *testing.T) {
	// Only set the folder plus one override
	os.Args = []string{
		"transcriber",
		"-model", "tiny",
		"./videos",
	}

	cfg := DefaultConfig()
	originalLanguage := cfg.Language // Should remain unchanged
	originalOutput := cfg.Output     // Should remain unchanged

	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Verify overridden values
	if cfg.Model != "tiny" {
		t.Errorf("Expected model 'tiny', got '%s'", cfg.Model)
	}

	// Verify unchanged values
	if cfg.Language != originalLanguage {
		t.Errorf("Language should not have changed, expected '%s', got '%s'", originalLanguage, cfg.Language)
	}
	if cfg.Output != originalOutput {
		t.Errorf("Output should not have changed, expected '%s', got '%s'", originalOutput, cfg.Output)
	}
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ErrUsage marks command-line misuse (unknown flag, wrong arguments) so
// the caller can exit with the conventional usage status.
var ErrUsage = errors.New("usage error")

// MergeFromFlags parses command-line flags and overrides config values.
// The input folder is the single positional argument.
func (c *Config) MergeFromFlags() error {
	// Define flags
	fs := flag.NewFlagSet("transcriber", flag.ContinueOnError)
	fs.Usage = printUsage

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Output settings
	output := fs.String("output", "", "Output CSV file path (default: transcription_output.csv)")

	// Transcription settings
	language := fs.String("language", "", "Transcription language: auto, th, en (default: auto)")
	model := fs.String("model", "", "Whisper model tier: tiny, base, small, medium, large (default: base)")

	// Execution settings
	extractTimeout := fs.Int("extract-timeout", -1, "Timeout in seconds for audio extraction (0 = no timeout)")
	transcribeTimeout := fs.Int("transcribe-timeout", -1, "Timeout in seconds for transcription (0 = no timeout)")
	sort := fs.Bool("sort", false, "Process files in sorted name order")
	noSort := fs.Bool("no-sort", false, "Process files in directory listing order")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Show configuration without transcribing")
	check := fs.Bool("check", false, "Verify ffmpeg, ffprobe and whisper are installed, then exit")

	// Parse flags
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Positional argument: input folder
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected exactly one folder argument, got %d", ErrUsage, fs.NArg())
	}
	if fs.NArg() == 1 {
		c.Folder = fs.Arg(0)
	}

	// Override with flag values (only if explicitly set)
	if *output != "" {
		c.Output = *output
	}
	if *language != "" {
		c.Language = *language
	}
	if *model != "" {
		c.Model = *model
	}

	// Execution settings (only override if explicitly set, -1 means not set)
	if *extractTimeout >= 0 {
		c.ExtractTimeout = *extractTimeout
	}
	if *transcribeTimeout >= 0 {
		c.TranscribeTimeout = *transcribeTimeout
	}
	if *sort {
		c.SortFiles = true
	}
	if *noSort {
		c.SortFiles = false
	}

	// Behavioral flags
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}
	if *check {
		c.CheckSetup = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `transcriber - Batch video transcription to CSV using Whisper

USAGE:
  transcriber [OPTIONS] FOLDER

ARGUMENTS:
  FOLDER
        Folder containing video files (.mp4, .mov), scanned non-recursively

CONFIGURATION:
  -config string
        Path to config file (default: search ./transcriber.yaml, ~/.transcriber/config.yaml, /etc/transcriber/config.yaml)

OUTPUT SETTINGS:
  -output string
        Output CSV file path (default: transcription_output.csv)

TRANSCRIPTION SETTINGS:
  -language string
        Transcription language: 'th' for Thai, 'en' for English,
        'auto' for per-file detection (default: auto)
  -model string
        Whisper model tier: tiny (fastest), base, small, medium,
        large (most accurate) (default: base)

EXECUTION SETTINGS:
  -extract-timeout int
        Timeout in seconds for each ffmpeg extraction (0 = no timeout)
  -transcribe-timeout int
        Timeout in seconds for each transcription (0 = no timeout)
  --sort
        Process files in sorted name order (default)
  --no-sort
        Process files in directory listing order

BEHAVIORAL FLAGS:
  --verbose
        Enable verbose logging
  --dry-run
        Show effective configuration without transcribing
  --check
        Verify ffmpeg, ffprobe and whisper are installed, then exit

EXAMPLES:
  # Basic usage, auto language detection
  transcriber ./videos

  # Forced Thai with the medium model
  transcriber -language th -model medium ./videos

  # Custom output path
  transcriber -output lectures.csv ./videos

  # Verify external tools are installed
  transcriber --check

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./transcriber.yaml
    2. ~/.transcriber/config.yaml
    3. /etc/transcriber/config.yaml

  Priority: CLI flags > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Folder:         %s\n", c.Folder)
	fmt.Printf("Output:         %s\n", c.Output)
	fmt.Printf("Language:       %s\n", c.Language)
	fmt.Printf("Model:          %s\n", c.Model)

	fmt.Println("\nExecution Settings:")
	if c.ExtractTimeout > 0 {
		fmt.Printf("  Extract Timeout:    %d seconds\n", c.ExtractTimeout)
	} else {
		fmt.Printf("  Extract Timeout:    none\n")
	}
	if c.TranscribeTimeout > 0 {
		fmt.Printf("  Transcribe Timeout: %d seconds\n", c.TranscribeTimeout)
	} else {
		fmt.Printf("  Transcribe Timeout: none\n")
	}
	fmt.Printf("  Sort Files:         %v\n", c.SortFiles)

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Verbose:       %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"transcriber/config"
	"transcriber/csvout"
	"transcriber/extractor"
	"transcriber/internal/timeutil"
	"transcriber/models"
	"transcriber/pipeline"
	"transcriber/transcribe"
)

func main() {
	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle setup-check mode
	if cfg.CheckSetup {
		if !checkSetup() {
			os.Exit(1)
		}
		return
	}

	// Step 3: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println("\n✓ Configuration is valid. No transcription will be performed.")
		return
	}

	// Step 4: Verify the external tools exist before touching any file
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s not found in PATH (required for audio extraction)\n", tool)
			os.Exit(1)
		}
	}
	if _, err := exec.LookPath(whisperBin()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s not found in PATH (required for transcription)\n", whisperBin())
		os.Exit(1)
	}

	// Step 5: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 6: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, cleaning up...")
		cancel()
	}()

	// Step 7: Run the transcription pipeline
	summary, err := runPipeline(ctx, cfg)
	if err != nil {
		// Check if it was a cancellation
		if ctx.Err() == context.Canceled {
			fmt.Println("\n⚠️  Transcription cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "\n❌ Pipeline error: %v\n", err)
		os.Exit(1)
	}

	printReport(cfg, summary)
}

// whisperBin resolves the whisper binary name, honoring the same override
// the engine uses.
func whisperBin() string {
	if bin := os.Getenv("WHISPER_BIN"); bin != "" {
		return bin
	}
	return "whisper"
}

// checkSetup verifies every external tool is installed and reports each one.
func checkSetup() bool {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                     SETUP CHECK")
	fmt.Println("═══════════════════════════════════════════════════════════")

	ok := true
	tools := []struct {
		name    string
		purpose string
	}{
		{"ffmpeg", "audio extraction"},
		{"ffprobe", "media analysis"},
		{whisperBin(), "transcription"},
	}

	for _, tool := range tools {
		path, err := exec.LookPath(tool.name)
		if err != nil {
			fmt.Printf("  ❌ %-10s not found (%s)\n", tool.name, tool.purpose)
			ok = false
			continue
		}
		fmt.Printf("  ✓ %-10s %s\n", tool.name, path)
	}

	if ok {
		fmt.Println("\n✅ All required tools are installed.")
	} else {
		fmt.Println("\n❌ Some tools are missing. Install them and re-run --check.")
	}
	return ok
}

// runPipeline executes the complete transcription workflow
func runPipeline(ctx context.Context, cfg *config.Config) (*models.RunSummary, error) {
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                 TRANSCRIBER - PIPELINE START                   ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Folder:   %s\n", cfg.Folder)
	fmt.Printf("Output:   %s\n", cfg.Output)
	fmt.Printf("Language: %s\n", cfg.Language)
	fmt.Printf("Model:    %s\n", cfg.Model)
	fmt.Println()

	// Create temporary directory for intermediate audio files
	tempDir, err := os.MkdirTemp("", "transcriber-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	ex := extractor.NewExtractor(tempDir)
	engine := transcribe.NewWhisperEngine(cfg.Model, cfg.WhisperLanguage())
	sink := csvout.NewCsvSink()

	p := pipeline.NewPipeline(cfg, ex, engine, sink).
		SetProgressCallback(func(index, total int, file models.VideoFile, durationSecs float64) {
			if durationSecs > 0 {
				fmt.Printf("🎬 Processing %d/%d: %s (%s)\n",
					index, total, file.Name, timeutil.FormatClock(durationSecs))
			} else {
				fmt.Printf("🎬 Processing %d/%d: %s\n", index, total, file.Name)
			}
		})

	summary, err := p.Run(ctx)
	if err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(startTime)
	return summary, nil
}

// printReport prints the final batch summary
func printReport(cfg *config.Config, summary *models.RunSummary) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	if summary.FilesFailed == 0 {
		fmt.Println("                     ✅ SUCCESS!")
	} else {
		fmt.Println("              ⚠️  COMPLETED WITH FAILURES")
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Output:      %s\n", cfg.Output)
	fmt.Printf("  Processed:   %d files\n", summary.FilesProcessed)
	fmt.Printf("  Failed:      %d files\n", summary.FilesFailed)
	fmt.Printf("  Rows:        %d\n", summary.RowsEmitted)
	fmt.Printf("  Total time:  %.2fs\n", summary.Elapsed.Seconds())

	if cfg.Verbose && len(summary.Results) > 0 {
		fmt.Println("\n  Per-file results:")
		for _, r := range summary.Results {
			if r.Success {
				fmt.Printf("    ✓ %s: %d rows\n", r.FileName, r.Segments)
			} else {
				fmt.Printf("    ❌ %s: %v\n", r.FileName, r.Error)
			}
		}
	} else if failures := summary.Failures(); len(failures) > 0 {
		fmt.Println("\n  Failed files:")
		for _, f := range failures {
			fmt.Printf("    ❌ %s: %v\n", f.FileName, f.Error)
		}
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
}

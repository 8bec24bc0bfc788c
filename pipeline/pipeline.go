// Package pipeline drives the batch transcription workflow: discover video
// files, extract audio, transcribe, and emit CSV rows, one file at a time.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"transcriber/config"
	"transcriber/csvout"
	"transcriber/extractor"
	"transcriber/ffprobe"
	"transcriber/internal/timeutil"
	"transcriber/models"
	"transcriber/transcribe"
)

// ConfigError reports a pre-run configuration failure: a bad input folder
// or no candidate files. It is fatal and aborts before any processing.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProgressFunc receives advisory per-file progress before processing
// starts. durationSecs is 0 when the duration could not be probed.
type ProgressFunc func(index, total int, file models.VideoFile, durationSecs float64)

// DurationProber reports a media file's duration in seconds. Failures are
// non-fatal; the pipeline degrades to "duration unknown".
type DurationProber func(ctx context.Context, path string) (float64, error)

// Pipeline processes every video file in a folder sequentially.
//
// Files are handled strictly one at a time: the transcription engine and
// ffmpeg can each consume most of the machine, so overlapping files risks
// resource exhaustion rather than throughput gain.
type Pipeline struct {
	cfg       *config.Config
	extractor extractor.AudioExtractor
	engine    transcribe.Engine
	sink      csvout.Sink
	probe     DurationProber
	progress  ProgressFunc
}

// NewPipeline creates a Pipeline from an explicit configuration and its
// collaborators.
func NewPipeline(cfg *config.Config, ex extractor.AudioExtractor, engine transcribe.Engine, sink csvout.Sink) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		extractor: ex,
		engine:    engine,
		sink:      sink,
		probe:     ffprobeDuration,
	}
}

// SetProgressCallback registers an advisory progress callback.
func (p *Pipeline) SetProgressCallback(fn ProgressFunc) *Pipeline {
	p.progress = fn
	return p
}

// SetDurationProber overrides the duration prober.
func (p *Pipeline) SetDurationProber(probe DurationProber) *Pipeline {
	p.probe = probe
	return p
}

// ffprobeDuration probes duration via ffprobe.
func ffprobeDuration(ctx context.Context, path string) (float64, error) {
	result, err := ffprobe.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	return result.GetDuration()
}

// Discover lists video files directly under folder (non-recursive) whose
// extension matches the allow-list.
//
// When sortFiles is true the result is sorted by file name for
// reproducible output; otherwise it keeps the order returned by the
// directory listing, which is platform-dependent.
//
// Returns a *ConfigError if folder does not exist, is not a directory,
// or contains no matching files.
func Discover(folder string, sortFiles bool) ([]models.VideoFile, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot access folder %s: %w", folder, err)}
	}
	if !info.IsDir() {
		return nil, &ConfigError{Err: fmt.Errorf("%s is not a directory", folder)}
	}

	dir, err := os.Open(folder)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot open folder %s: %w", folder, err)}
	}
	defer dir.Close()

	// ReadDir on the handle preserves the raw directory listing order;
	// os.ReadDir would silently sort it
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot list folder %s: %w", folder, err)}
	}

	var files []models.VideoFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !models.IsSupportedExt(filepath.Ext(entry.Name())) {
			continue
		}
		vf, err := models.NewVideoFile(filepath.Join(folder, entry.Name()))
		if err != nil {
			continue
		}
		files = append(files, vf)
	}

	if len(files) == 0 {
		return nil, &ConfigError{Err: fmt.Errorf("no video files (%v) found in %s",
			models.SupportedExts(), folder)}
	}

	if sortFiles {
		sort.Slice(files, func(i, j int) bool {
			return files[i].Name < files[j].Name
		})
	}

	return files, nil
}

// Run executes the whole batch and returns a summary.
//
// The run fails fast with a *ConfigError before any processing if
// discovery fails, and aborts with a *csvout.SinkError if the output
// artifact cannot be produced. Extraction and transcription failures are
// recorded per file and never abort the batch.
func (p *Pipeline) Run(ctx context.Context) (summary *models.RunSummary, err error) {
	files, err := Discover(p.cfg.Folder, p.cfg.SortFiles)
	if err != nil {
		return nil, err
	}

	// The output artifact is only created once discovery has succeeded
	if err := p.sink.Open(p.cfg.Output); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := p.sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	summary = &models.RunSummary{}

	for i, file := range files {
		if p.progress != nil {
			duration := 0.0
			if p.probe != nil {
				if d, perr := p.probe(ctx, file.Path); perr == nil {
					duration = d
				}
			}
			p.progress(i+1, len(files), file, duration)
		}

		rows, procErr := p.processFile(ctx, file)
		if procErr != nil {
			if isRecoverable(procErr) {
				result, rerr := models.NewFileResultFailure(file.Name, procErr)
				if rerr != nil {
					return summary, rerr
				}
				summary.Add(result)
				continue
			}
			// Sink failures and anything unclassified abort the run
			return summary, procErr
		}

		result, rerr := models.NewFileResultSuccess(file.Name, rows)
		if rerr != nil {
			return summary, rerr
		}
		summary.Add(result)
	}

	return summary, nil
}

// processFile runs one file through extract, transcribe, and row emission.
// The temporary audio asset is removed on every exit path.
func (p *Pipeline) processFile(ctx context.Context, file models.VideoFile) (rows int, err error) {
	extractCtx, cancelExtract := stepContext(ctx, p.cfg.ExtractTimeout)
	defer cancelExtract()

	audioPath, err := p.extractor.Extract(extractCtx, file.Path)
	if err != nil {
		return 0, err
	}
	defer os.Remove(audioPath)

	transcribeCtx, cancelTranscribe := stepContext(ctx, p.cfg.TranscribeTimeout)
	defer cancelTranscribe()

	segments, err := p.engine.Transcribe(transcribeCtx, audioPath)
	if err != nil {
		return 0, err
	}

	for _, seg := range segments {
		row, rerr := models.NewTranscriptRow(file.Name, timeutil.FormatMinutes(seg.Start), seg.Text)
		if rerr != nil {
			// The engine already drops empty segments; anything that
			// still fails row validation carries no transcript value
			continue
		}
		if werr := p.sink.WriteRow(row); werr != nil {
			return rows, werr
		}
		rows++
	}

	return rows, nil
}

// stepContext derives a per-step context; timeout 0 preserves the
// unbounded blocking behavior of the external tools.
func stepContext(ctx context.Context, timeoutSecs int) (context.Context, context.CancelFunc) {
	if timeoutSecs <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
}

// isRecoverable reports whether err is a per-file failure that the batch
// absorbs rather than propagates.
func isRecoverable(err error) bool {
	var extErr *extractor.ExtractionError
	var trErr *transcribe.TranscriptionError
	return errors.As(err, &extErr) || errors.As(err, &trErr)
}

// Package extractor pulls normalized audio tracks out of video containers
// using the ffmpeg command-line tool.
package extractor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Whisper expects 16 kHz mono PCM input.
const (
	audioCodec      = "pcm_s16le"
	audioSampleRate = 16000
	audioChannels   = 1
)

// WavBuilder builds the ffmpeg command that extracts a mono 16 kHz WAV
// from a video container.
type WavBuilder struct {
	inputPath  string
	outputPath string
	sampleRate int
	channels   int
}

// NewWavBuilder creates a new WavBuilder for the given input video and
// output WAV path.
func NewWavBuilder(inputPath, outputPath string) *WavBuilder {
	return &WavBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		sampleRate: audioSampleRate,
		channels:   audioChannels,
	}
}

// SetSampleRate sets the output sample rate in Hz (e.g., 16000, 44100).
func (w *WavBuilder) SetSampleRate(rate int) *WavBuilder {
	w.sampleRate = rate
	return w
}

// SetChannels sets the number of output channels (e.g., 1 for mono).
func (w *WavBuilder) SetChannels(channels int) *WavBuilder {
	w.channels = channels
	return w
}

// BuildArgs constructs the ffmpeg command arguments.
func (w *WavBuilder) BuildArgs() []string {
	args := []string{
		"-i", w.inputPath,
		"-vn", // No video
		"-acodec", audioCodec,
		"-ar", fmt.Sprintf("%d", w.sampleRate),
		"-ac", fmt.Sprintf("%d", w.channels),
		"-y", // Overwrite output file
		w.outputPath,
	}
	return args
}

// Run executes the ffmpeg command.
func (w *WavBuilder) Run(ctx context.Context) error {
	if w.inputPath == "" {
		return fmt.Errorf("cannot run command: input path is empty")
	}
	if w.outputPath == "" {
		return fmt.Errorf("cannot run command: output path is empty")
	}

	args := w.BuildArgs()
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the ffmpeg command without executing it.
func (w *WavBuilder) DryRun() (string, error) {
	if w.inputPath == "" {
		return "", fmt.Errorf("cannot build command: input path is empty")
	}

	args := w.BuildArgs()
	return fmt.Sprintf("ffmpeg %s", strings.Join(args, " ")), nil
}

// GetInputPath returns the input file path.
func (w *WavBuilder) GetInputPath() string {
	return w.inputPath
}

// GetOutputPath returns the output file path.
func (w *WavBuilder) GetOutputPath() string {
	return w.outputPath
}

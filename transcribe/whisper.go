package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// WhisperEngine runs the Whisper command-line tool as a subprocess.
//
// The model tier and language are fixed per engine instance: the tier is a
// quality/speed tradeoff passed through unmodified, and a non-empty
// language forces the whole file to be decoded as that language. An empty
// language lets Whisper detect the spoken language per file.
type WhisperEngine struct {
	model    string
	language string
	bin      string
}

// NewWhisperEngine creates a WhisperEngine for the given model tier
// ("tiny", "base", "small", "medium", "large") and language code
// ("" for auto-detection, "th", "en").
//
// The whisper binary is resolved from PATH; set WHISPER_BIN to override.
func NewWhisperEngine(model, language string) *WhisperEngine {
	bin := os.Getenv("WHISPER_BIN")
	if bin == "" {
		bin = "whisper"
	}
	return &WhisperEngine{
		model:    model,
		language: language,
		bin:      bin,
	}
}

// whisperOutput is the JSON document the whisper CLI writes alongside
// the audio file when --output_format json is requested.
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs whisper on audioPath and returns its timed segments in
// chronological order. Empty segments are dropped; text is trimmed.
//
// Whisper's JSON artifact is written to a private temp directory and
// removed before returning. Any CLI or parse failure surfaces as a
// *TranscriptionError.
func (w *WhisperEngine) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	// Private output dir so the JSON artifact never collides and never leaks
	outDir, err := os.MkdirTemp("", "whisper-out-*")
	if err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("failed to create output dir: %w", err)}
	}
	defer os.RemoveAll(outDir)

	args := []string{
		audioPath,
		"--model", w.model,
		"--output_format", "json",
		"--output_dir", outDir,
		"--verbose", "False",
	}
	if w.language != "" {
		args = append(args, "--language", w.language)
	}

	cmd := exec.CommandContext(ctx, w.bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, &TranscriptionError{
			AudioPath: audioPath,
			Err:       fmt.Errorf("whisper failed: %w (output: %s)", err, strings.TrimSpace(string(out))),
		}
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outDir, stem+".json")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("whisper produced no JSON output: %w", err)}
	}

	segments, err := parseWhisperJSON(data)
	if err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: err}
	}

	return segments, nil
}

// parseWhisperJSON converts whisper's JSON document into segments,
// trimming text and dropping empty entries.
func parseWhisperJSON(data []byte) ([]Segment, error) {
	var parsed whisperOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse whisper JSON output: %w", err)
	}

	var segments []Segment
	for _, s := range parsed.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  text,
		})
	}

	return segments, nil
}

package config

// Config holds all transcriber configuration options
type Config struct {
	// Required fields
	Folder string `yaml:"folder"` // Folder containing video files
	Output string `yaml:"output"` // Output CSV file path

	// Transcription settings
	Language string `yaml:"language"` // "auto", "th", "en"
	Model    string `yaml:"model"`    // "tiny", "base", "small", "medium", "large"

	// Execution settings
	ExtractTimeout    int  `yaml:"extract_timeout"`    // seconds per ffmpeg extraction, 0 = unbounded
	TranscribeTimeout int  `yaml:"transcribe_timeout"` // seconds per transcription, 0 = unbounded
	SortFiles         bool `yaml:"sort_files"`         // sort discovered files by name

	// Behavioral flags
	Verbose    bool `yaml:"verbose"`     // Show detailed logs
	DryRun     bool `yaml:"dry_run"`     // Show config without transcribing
	CheckSetup bool `yaml:"check_setup"` // Verify external tools and exit
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - folder must be provided by user
		Folder: "",
		Output: "transcription_output.csv",

		// Transcription defaults
		Language: "auto", // Per-file language detection
		Model:    "base", // Balanced quality/speed tier

		// Execution defaults
		ExtractTimeout:    0, // No timeout, match ffmpeg's own behavior
		TranscribeTimeout: 0, // No timeout, large models can be slow
		SortFiles:         true,

		// Behavioral defaults
		Verbose:    false,
		DryRun:     false,
		CheckSetup: false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	return &copy
}

// LanguageValues returns valid language mode values
func LanguageValues() []string {
	return []string{"auto", "th", "en"}
}

// IsValidLanguage checks if language is valid
func IsValidLanguage(language string) bool {
	for _, valid := range LanguageValues() {
		if language == valid {
			return true
		}
	}
	return false
}

// ModelValues returns valid model tier values, fastest to most accurate
func ModelValues() []string {
	return []string{"tiny", "base", "small", "medium", "large"}
}

// IsValidModel checks if model tier is valid
func IsValidModel(model string) bool {
	for _, valid := range ModelValues() {
		if model == valid {
			return true
		}
	}
	return false
}

// WhisperLanguage returns the language code to pass to the engine.
// "auto" maps to the empty string, which lets the engine detect the
// spoken language per file.
func (c *Config) WhisperLanguage() string {
	if c.Language == "auto" {
		return ""
	}
	return c.Language
}

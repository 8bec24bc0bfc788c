package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Folder == "" {
		errors = append(errors, "input folder is required")
	} else {
		info, err := os.Stat(c.Folder)
		if os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input folder does not exist: %s", c.Folder))
		} else if err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("input path is not a directory: %s", c.Folder))
		}
	}

	if c.Output == "" {
		errors = append(errors, "output file is required")
	}

	// Validate language mode
	if !IsValidLanguage(c.Language) {
		errors = append(errors, fmt.Sprintf("invalid language '%s', must be one of: %s",
			c.Language, strings.Join(LanguageValues(), ", ")))
	}

	// Validate model tier
	if !IsValidModel(c.Model) {
		errors = append(errors, fmt.Sprintf("invalid model '%s', must be one of: %s",
			c.Model, strings.Join(ModelValues(), ", ")))
	}

	// Validate timeouts (0 is valid, means unbounded)
	if c.ExtractTimeout < 0 {
		errors = append(errors, "extract timeout cannot be negative (use 0 for no timeout)")
	}
	if c.TranscribeTimeout < 0 {
		errors = append(errors, "transcribe timeout cannot be negative (use 0 for no timeout)")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

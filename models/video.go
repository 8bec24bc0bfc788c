// Package models provides core data structures for the transcriber system.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// VideoFile represents a candidate video discovered in the input folder.
//
// A VideoFile is immutable once discovered. Its identity is the absolute
// path; Name is the file name as listed (written to the CSV unmodified)
// and Ext is the lowercased extension.
//
// Use NewVideoFile to create a validated instance.
type VideoFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

// supportedExts is the allow-list of video container extensions,
// matched case-insensitively.
var supportedExts = map[string]bool{
	".mp4": true,
	".mov": true,
}

// SupportedExts returns the allow-listed video container extensions.
func SupportedExts() []string {
	return []string{".mp4", ".mov"}
}

// IsSupportedExt reports whether ext (with leading dot, any case) is an
// allow-listed video container extension.
func IsSupportedExt(ext string) bool {
	return supportedExts[strings.ToLower(ext)]
}

// NewVideoFile creates a new VideoFile with validation.
//
// Returns an error if the path is empty or the extension is not on the
// allow-list.
//
// Example:
//
//	vf, err := models.NewVideoFile("/videos/lecture.MP4")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewVideoFile(path string) (VideoFile, error) {
	if strings.TrimSpace(path) == "" {
		return VideoFile{}, fmt.Errorf("invalid video file: path cannot be empty")
	}

	ext := filepath.Ext(path)
	if !IsSupportedExt(ext) {
		return VideoFile{}, fmt.Errorf("invalid video file: unsupported extension %q (supported: %s)",
			ext, strings.Join(SupportedExts(), ", "))
	}

	return VideoFile{
		Path: path,
		Name: filepath.Base(path),
		Ext:  strings.ToLower(ext),
	}, nil
}

// Package device provides the external capabilities the capture flow
// consumes: photo acquisition from the filesystem, position lookup, and
// image optimization.
package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoSource is returned when TakePicture is called before a source image
// has been selected.
var ErrNoSource = errors.New("no photo source selected")

// FileCamera is the terminal stand-in for a device camera: "taking a
// picture" ingests an existing image file. Permission maps to the file being
// a readable image.
type FileCamera struct {
	mu     sync.Mutex
	source string
}

func NewFileCamera() *FileCamera {
	return &FileCamera{}
}

// SetSource points the camera at the image file to ingest on the next
// TakePicture call.
func (c *FileCamera) SetSource(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = path
}

// RequestPermission reports whether the selected source is a readable image
// file. A missing or unreadable file reads as "denied", not as an error.
func (c *FileCamera) RequestPermission() (bool, error) {
	c.mu.Lock()
	source := c.source
	c.mu.Unlock()

	if source == "" {
		return false, nil
	}
	if !isImagePath(source) {
		return false, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return false, nil
	}
	f.Close()
	return true, nil
}

// TakePicture returns the raw photo reference. The transformer takes it from
// here; the camera itself copies nothing.
func (c *FileCamera) TakePicture() (string, error) {
	c.mu.Lock()
	source := c.source
	c.mu.Unlock()

	if source == "" {
		return "", ErrNoSource
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("could not resolve photo path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("could not read photo: %w", err)
	}

	return abs, nil
}

func isImagePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

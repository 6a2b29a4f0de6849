// policy.go - Upload validation enforced before extraction

package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize caps receipt uploads at 10MB
const MaxFileSize = 10 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

var (
	ErrExtensionNotAllowed = errors.New("invalid file type")
	ErrNotAnImage          = errors.New("file content is not an image")
	ErrFileTooLarge        = errors.New("file size exceeds maximum allowed size")
)

// Validate checks the filename extension, the sniffed content type, and the
// byte size, in that order. The first violation wins.
func Validate(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %q (allowed: png, jpg, jpeg, gif, bmp, tiff, webp)", ErrExtensionNotAllowed, ext)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return fmt.Errorf("%w: detected %s", ErrNotAnImage, mime.String())
	}

	if len(data) > MaxFileSize {
		return fmt.Errorf("%w: %d bytes (max %dMB)", ErrFileTooLarge, len(data), MaxFileSize/(1024*1024))
	}

	return nil
}

// AllowedFile reports whether filename carries an accepted receipt
// extension. Batch scans use it to pick candidates without reading them.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

package validator

import "errors"

// DefaultMaxUploadSize caps buffered uploads when no limit is configured.
const DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

// UploadConfig defines transport-level constraints for file uploads.
// Content inspection (format, dimensions) is intentionally out of scope;
// uploads are capped by size only.
type UploadConfig struct {
	MaxFileSize int64
}

// DefaultUploadConfig returns the default upload configuration.
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{MaxFileSize: DefaultMaxUploadSize}
}

// ValidateFileSize checks that the file is non-empty and within the limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return errors.New("file is empty")
	}
	limit := c.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxUploadSize
	}
	if size > limit {
		return errors.New("file too large")
	}
	return nil
}

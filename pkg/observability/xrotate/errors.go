package xrotate

import "errors"

var (
	ErrEmptyFilename     = errors.New("xrotate: filename is required")
	ErrInvalidFilename   = errors.New("xrotate: invalid filename")
	ErrInvalidMaxSize    = errors.New("xrotate: invalid MaxSizeMB")
	ErrInvalidMaxBackups = errors.New("xrotate: invalid MaxBackups")
	ErrInvalidMaxAge     = errors.New("xrotate: invalid MaxAgeDays")
	ErrNoCleanupPolicy   = errors.New("xrotate: no cleanup policy configured")
	ErrClosed            = errors.New("xrotate: rotator is closed")
)

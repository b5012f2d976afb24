// Package errs defines the sentinel errors shared by the forge packages.
//
// Callers match them with errors.Is; functions wrap them with context using fmt.Errorf and %w.
package errs

import "errors"

// Validated read errors.
var (
	ErrInvalidValue          = errors.New("invalid value")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// Configuration errors.
var (
	ErrInvalidProcessTag  = errors.New("process tag must be non-zero")
	ErrInvalidSegmentSize = errors.New("segment size out of range")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrInvalidFixVersion  = errors.New("invalid FIX version")
)

// Journal errors.
var (
	ErrSequenceOrder   = errors.New("sequence number not increasing")
	ErrNotFound        = errors.New("sequence number not found")
	ErrChecksum        = errors.New("segment digest mismatch")
	ErrInvalidHeader   = errors.New("invalid segment header")
	ErrCorruptSegment  = errors.New("corrupt segment payload")
	ErrMessageTooLarge = errors.New("message exceeds frame limit")
)

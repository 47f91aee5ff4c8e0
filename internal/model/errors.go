package model

import "errors"

// Error kinds. Callers classify failures with errors.Is; the HTTP boundary
// maps each kind to a status code. ErrStorage is the only kind a session
// should treat as non-recoverable.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrProtected  = errors.New("protected entity")
	ErrForbidden  = errors.New("operation not permitted")
	ErrAuth       = errors.New("invalid credentials")
	ErrStorage    = errors.New("storage failure")
)

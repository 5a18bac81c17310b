package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates a password mismatch during login or password change.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMalformedBackup indicates that a backup file could not be parsed or is
// missing its data payload. Restoration fails closed on this error.
var ErrMalformedBackup = errors.New("malformed backup")

package services

import "errors"

// Sentinel errors shared by all services. Controllers translate them to HTTP
// statuses; services wrap them with fmt.Errorf("...: %w", ...) to name the
// failing resource.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")
)

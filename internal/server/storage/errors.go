package storage

import "errors"

// Common storage errors
var (
	// ErrObjectNotFound indicates that there is no object (or directory) at the path
	ErrObjectNotFound = errors.New("object not found")

	// ErrSHAMismatch indicates that expected sha does not match the stored one
	ErrSHAMismatch = errors.New("sha does not match")

	// ErrSHARequired indicates an update of an existing object without expected sha
	ErrSHARequired = errors.New("sha wasn't supplied")
)

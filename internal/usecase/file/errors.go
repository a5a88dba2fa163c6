package file

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	// ErrAccessDenied means the requesting user is not on the allow-list.
	// It is the only failure surfaced distinctly to callers; everything
	// else, not-found included, stays a generic internal failure so object
	// existence is not leaked.
	ErrAccessDenied = errors.New("file: access denied")
)

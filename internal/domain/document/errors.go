package document

import (
	"errors"
	"fmt"
)

// Creation error kinds. These are the only errors CreateDocument returns
// besides input validation, and each is terminal.
var (
	ErrInvalidParent    = errors.New("invalid parent")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCreationFailed   = errors.New("creation failed")
)

// Caller-facing messages for each creation error kind.
const (
	msgInvalidParent    = "Parent folder not found. Check the folder ID."
	msgPermissionDenied = "Permission denied. Make sure you have write access to the destination folder."
	msgCreationFailed   = "Failed to create document: %s"
)

// CreationError reports that the container could not be created. Kind is one
// of ErrInvalidParent, ErrPermissionDenied or ErrCreationFailed; Cause is the
// error returned by Drive. Both are reachable via errors.Is.
type CreationError struct {
	Kind  error
	Cause error
}

// NewCreationError returns a CreationError of the given kind.
func NewCreationError(kind, cause error) *CreationError {
	return &CreationError{Kind: kind, Cause: cause}
}

// Error returns the caller-facing message for the error kind.
func (e *CreationError) Error() string {
	switch e.Kind {
	case ErrInvalidParent:
		return msgInvalidParent
	case ErrPermissionDenied:
		return msgPermissionDenied
	default:
		cause := "unknown error"
		if e.Cause != nil {
			cause = e.Cause.Error()
		}
		return fmt.Sprintf(msgCreationFailed, cause)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *CreationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

package apperr

import "errors"

var (
	// ErrNotFound means the requested group, article or range has no match.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a source row already has a mapping entry.
	ErrConflict = errors.New("already mapped")
	// ErrUnsupported marks commands this backend does not implement.
	ErrUnsupported = errors.New("not implemented")
	// ErrStorageUnavailable matches every StorageError.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageError wraps a failed query or connection.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

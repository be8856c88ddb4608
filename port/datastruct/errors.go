package datastruct

import "go.llib.dev/dsa/pkg/errorkit"

const (
	// ErrIndexOutOfBounds is returned when an index addressed operation receives
	// a negative index or one past the valid range.
	ErrIndexOutOfBounds errorkit.Error = "index out of bounds"
	// ErrEmpty is returned when a removal or peek is attempted on an empty container.
	ErrEmpty errorkit.Error = "container is empty"
	// ErrInvalidArgument is returned by constructors when the arguments can't produce a valid container.
	ErrInvalidArgument errorkit.Error = "invalid argument"
)

// IndexError returns an ErrIndexOutOfBounds error which explains the valid range.
func IndexError(index, length int) error {
	return ErrIndexOutOfBounds.F("index %d is out of range [0:%d]", index, length)
}

// EmptyIndexError is the failure of an index addressed operation on an empty container.
// It matches both ErrEmpty and ErrIndexOutOfBounds.
func EmptyIndexError() error {
	return ErrEmpty.Wrap(ErrIndexOutOfBounds)
}

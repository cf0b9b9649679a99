package hwmon

import (
	"errors"
	"fmt"
)

// ErrNotFound can be used with errors.Is to check for a NotFoundError
var ErrNotFound = errors.New("hwmon resource not found")

// NotFoundError is returned when the hwmon directory of a device,
// or one of the expected files inside of it, does not exist.
type NotFoundError struct {
	Path   string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IoError is returned when reading from or writing to a hwmon file fails
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

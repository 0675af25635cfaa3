package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// NotFoundError reports that no record of the named entity exists for the
// given guid. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
	GUID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.GUID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage error")
)

// storageError marks err as a storage failure while keeping the cause for logs.
func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package main

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for CLI commands.
const (
	exitSuccess       = 0
	exitError         = 1
	exitInvalidSize   = 2
	exitUnknownFormat = 3
	exitPathNotFound  = 4
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errInvalidSize(input string) *ExitError {
	return &ExitError{
		Code:    exitInvalidSize,
		Message: fmt.Sprintf("Invalid size '%s': expected a non-negative byte count.", input),
	}
}

func errUnknownFormat(err error) *ExitError {
	return &ExitError{
		Code:    exitUnknownFormat,
		Message: fmt.Sprintf("%s.", capitalize(err.Error())),
	}
}

func errPathNotFound(err error) *ExitError {
	return &ExitError{
		Code:    exitPathNotFound,
		Message: fmt.Sprintf("%s.", capitalize(err.Error())),
	}
}

func errConfigExists(path string) *ExitError {
	return &ExitError{
		Code:    exitError,
		Message: fmt.Sprintf("Config '%s' already exists. Use --force to overwrite.", path),
	}
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitError
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package catalog

import (
	"errors"
	"fmt"
)

// ErrorClass represents a classification of fetch errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses and precondition violations.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport and timeout errors.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassDecode represents undecodable response bodies.
	ErrorClassDecode ErrorClass = "decode"
)

// Error represents a catalog fetch error with classification context.
type Error struct {
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		if e.StatusCode != 0 {
			return fmt.Sprintf("catalog %s error (status %d): %s: %v", e.Class, e.StatusCode, e.Message, e.Err)
		}
		return fmt.Sprintf("catalog %s error: %s: %v", e.Class, e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s error (status %d): %s", e.Class, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("catalog %s error: %s", e.Class, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the same fetch may succeed.
func (e *Error) Retryable() bool {
	switch e.Class {
	case ErrorClassServer, ErrorClassNetwork:
		return true
	default:
		return false
	}
}

// ClassOf returns the class of err, or ErrorClassNetwork when err is not a
// catalog error.
func ClassOf(err error) ErrorClass {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Class
	}
	return ErrorClassNetwork
}

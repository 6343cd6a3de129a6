package service

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrConfiguration = errors.New("configuration error")
	// ErrSubmission - непредвиденный сбой в конвейере приема тревоги
	ErrSubmission = errors.New("alert submission failed")
)

package ir

import "errors"

var (
	ErrNotFound        = errors.New("value not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrTypeMismatch    = errors.New("type mismatch")
)

package jdom

import "errors"

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrQuery         = errors.New("query error")
)

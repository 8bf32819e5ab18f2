package parse

import "errors"

var (
	ErrUnexpectedChar    = errors.New("unexpected character")
	ErrExpectedDelimiter = errors.New("expected delimiter")
	ErrLeadingZero       = errors.New("leading zeros are not allowed")
	ErrExpectedDigit     = errors.New("expected digit")
	ErrBadEscape         = errors.New("bad escaped character")
	ErrBadUnicode        = errors.New("bad unicode character")
	ErrMissingSurrogate  = errors.New("missing unicode surrogate pair")
	ErrTrailingData      = errors.New("trailing data after value")
)

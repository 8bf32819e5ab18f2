package parse

type parseOpts struct {
	requireEOF bool
}

type ParseOption func(*parseOpts)

// RequireEOF makes Parse fail with ErrTrailingData when non-whitespace
// content follows the parsed value.
func RequireEOF() ParseOption {
	return func(o *parseOpts) { o.requireEOF = true }
}

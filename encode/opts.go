package encode

type EncodeOption func(*EncState)

// Pretty switches to formatted output: one child per line, nested
// indentation per depth.
func Pretty() EncodeOption {
	return func(es *EncState) { es.pretty = true }
}

// Indent sets the indent unit used in pretty mode. The default is three
// spaces.
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// LineBreak sets the line break string used in pretty mode. The default is
// "\n".
func LineBreak(s string) EncodeOption {
	return func(es *EncState) { es.lineBreak = s }
}

// WithColors enables terminal coloring of the output. A nil Colors is a
// no-op.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

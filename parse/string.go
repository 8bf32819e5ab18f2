package parse

// string scans a quoted string at the cursor and returns its decoded
// value. Literal runs are copied in bulk; escapes flush the pending run and
// append their decoded form. An unknown escape decodes to the escaped byte
// itself, which covers the `\"`, `\\` and `\/` cases of the grammar. A
// string cut off by end of input yields what was decoded so far.
func (p *parser) string() (string, error) {
	p.off++ // opening '"'
	if p.cur() == '"' {
		p.off++
		return "", nil
	}

	var out []byte
	start := p.off
	for p.off < len(p.buf) && p.buf[p.off] != '"' {
		if p.buf[p.off] != '\\' {
			p.off++
			continue
		}
		out = append(out, p.buf[start:p.off]...)
		p.off++

		switch p.cur() {
		case 'b':
			out = append(out, '\b')
			p.off++
		case 'f':
			out = append(out, '\f')
			p.off++
		case 'n':
			out = append(out, '\n')
			p.off++
		case 'r':
			out = append(out, '\r')
			p.off++
		case 't':
			out = append(out, '\t')
			p.off++
		case 'u':
			p.off++
			var err error
			out, err = p.unicode(out)
			if err != nil {
				return "", err
			}
		default:
			if p.off < len(p.buf) {
				out = append(out, p.buf[p.off])
				p.off++
			}
		}
		start = p.off
	}
	out = append(out, p.buf[start:p.off]...)
	if p.off < len(p.buf) {
		p.off++ // closing '"'
	}
	return string(out), nil
}

// unicode decodes one \u escape (the cursor is past the 'u'), combining
// surrogate pairs, and appends the code point's UTF-8 encoding to out.
func (p *parser) unicode(out []byte) ([]byte, error) {
	u, err := p.hex4()
	if err != nil {
		return nil, err
	}
	if (u >= 0xDC00 && u <= 0xDFFF) || u == 0 {
		return nil, p.errf(ErrBadUnicode, "%#04x", u)
	}
	if u >= 0xD800 && u <= 0xDBFF {
		if p.cur() != '\\' {
			return nil, p.errf(ErrMissingSurrogate, "expected second unicode surrogate part")
		}
		p.off++
		if p.cur() != 'u' {
			return nil, p.errf(ErrMissingSurrogate, "expected second unicode surrogate part")
		}
		p.off++
		u2, err := p.hex4()
		if err != nil {
			return nil, err
		}
		u = 0x10000 + ((u&0x3FF)<<10 | u2&0x3FF)
	}

	switch {
	case u < 0x80:
		out = append(out, byte(u))
	case u < 0x800:
		out = append(out, byte(0xC0|u>>6), byte(0x80|u&0x3F))
	case u < 0x10000:
		out = append(out, byte(0xE0|u>>12), byte(0x80|u>>6&0x3F), byte(0x80|u&0x3F))
	default:
		out = append(out,
			byte(0xF0|u>>18),
			byte(0x80|u>>12&0x3F),
			byte(0x80|u>>6&0x3F),
			byte(0x80|u&0x3F))
	}
	return out, nil
}

// hex4 reads exactly four hex digits into a 16-bit code unit.
func (p *parser) hex4() (int, error) {
	v := 0
	for i := 0; i < 4; i++ {
		c := p.cur()
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 + int(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 + int(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 + int(c-'A'+10)
		default:
			return 0, p.errf(ErrBadEscape, "%q is not a hex digit", c)
		}
		p.off++
	}
	return v, nil
}

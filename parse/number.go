package parse

// number scans a numeric literal at the cursor. Digits accumulate into one
// running value; fractional digits are counted rather than scaled in place,
// and the net decimal exponent is applied at the end by squaring the
// power-of-ten factor, dividing for a negative exponent and multiplying
// otherwise. This keeps the decoding fully specified without library float
// parsing.
func (p *parser) number() (float64, error) {
	var (
		number  float64
		sign    = 1.0
		frac    int
		exp     int
		expSign = 1
	)

	if p.cur() == '-' {
		sign = -1
		p.off++
	}

	if p.cur() == '0' {
		p.off++
		if isDigit(p.cur()) {
			return 0, p.errf(ErrLeadingZero, "%q", p.cur())
		}
	} else {
		for isDigit(p.cur()) {
			number = number*10 + float64(p.cur()-'0')
			p.off++
		}
	}

	if p.cur() == '.' {
		p.off++
		if !isDigit(p.cur()) {
			return 0, p.errf(ErrExpectedDigit, "expected digit after '.'")
		}
		for isDigit(p.cur()) {
			number = number*10 + float64(p.cur()-'0')
			frac++
			p.off++
		}
	}

	if p.cur() == 'e' || p.cur() == 'E' {
		p.off++
		switch p.cur() {
		case '-':
			expSign = -1
			p.off++
		case '+':
			p.off++
		}
		if !isDigit(p.cur()) {
			return 0, p.errf(ErrExpectedDigit, "expected digit after 'e' or 'E'")
		}
		for isDigit(p.cur()) {
			exp = exp*10 + int(p.cur()-'0')
			p.off++
		}
	}

	number = sign * number
	exp = exp*expSign - frac

	e10 := 10.0
	e := exp
	if e < 0 {
		e = -e
	}
	for e != 0 {
		if e&1 == 1 {
			if exp < 0 {
				number /= e10
			} else {
				number *= e10
			}
		}
		e >>= 1
		e10 *= e10
	}

	return number, nil
}

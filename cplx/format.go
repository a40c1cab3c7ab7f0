// SPDX-License-Identifier: MIT

// Package cplx - literal parsing and compact formatting.
//
// Grammar accepted by Parse (whitespace ignored):
//
//	literal := real | imag | real sign imag | "∞" | "inf" | "NaN"
//	imag    := [sign] [number] "i"
//
// Formatting mirrors the grammar, so Parse(z.String()) == z for every
// value whose components print exactly.

package cplx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	infSymbol = "∞"
	nanSymbol = "NaN"
	imagUnit  = "i"

	// wholeLimit bounds the magnitude printed in plain integer form.
	wholeLimit = 1e15
)

// String renders z compactly:
//
//	4+3i, 2-i, -i, i, 3i, 3, 0.5-0.25i, ∞, NaN
//
// Whole components carry no trailing decimals, a unit imaginary coefficient
// is omitted, a zero imaginary part is dropped, and a zero real part is
// dropped for pure imaginaries. Signed zeros stay visible ("-0").
func (z Complex) String() string {
	switch z.kind {
	case Infinite:
		return infSymbol
	case Undefined:
		return nanSymbol
	}
	if z.im == 0 {
		return formatFloat(z.re)
	}
	if z.re == 0 {
		return imagTerm(z.im, false)
	}

	return formatFloat(z.re) + imagTerm(z.im, true)
}

// imagTerm formats the imaginary coefficient with its unit. With
// forceSign a leading "+" is written for positive coefficients.
func imagTerm(im float64, forceSign bool) string {
	var sign string
	switch {
	case math.Signbit(im):
		sign = "-"
	case forceSign:
		sign = "+"
	}
	mag := math.Abs(im)
	if mag == 1 {
		return sign + imagUnit
	}

	return sign + formatFloat(mag) + imagUnit
}

// formatFloat prints whole numbers without a decimal point and everything
// else with the shortest representation that round-trips.
func formatFloat(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < wholeLimit {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Parse reads a complex literal such as "4+3i", "2-i", "-4i", "i", "3",
// "1.5e2+0.5i", "∞" or "NaN". Whitespace anywhere is ignored.
//
// Errors:
//   - ErrParse (wrapped with the offending input).
func Parse(s string) (Complex, error) {
	lit := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	switch strings.ToLower(lit) {
	case "":
		return ZERO, fmt.Errorf("%w: empty input", ErrParse)
	case infSymbol, "inf", "+inf", "-inf":
		return INF, nil
	case "nan":
		return NaN, nil
	}

	if !strings.HasSuffix(lit, imagUnit) {
		re, err := parseComponent(lit)
		if err != nil {
			return ZERO, fmt.Errorf("%w: %q", ErrParse, s)
		}

		return Real(re), nil
	}

	body := lit[:len(lit)-len(imagUnit)]
	split := imagSplit(body)
	var reText, imText string
	if split > 0 {
		reText, imText = body[:split], body[split:]
	} else {
		imText = body
	}

	var re float64
	if reText != "" {
		v, err := parseComponent(reText)
		if err != nil {
			return ZERO, fmt.Errorf("%w: %q", ErrParse, s)
		}
		re = v
	}

	var im float64
	switch imText {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		v, err := parseComponent(imText)
		if err != nil {
			return ZERO, fmt.Errorf("%w: %q", ErrParse, s)
		}
		im = v
	}

	return New(re, im), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level literals.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return z
}

// imagSplit returns the index of the sign that starts the imaginary term,
// or -1. Signs at position 0 or right after an exponent marker are skipped.
func imagSplit(body string) int {
	for k := len(body) - 1; k > 0; k-- {
		if body[k] != '+' && body[k] != '-' {
			continue
		}
		if prev := body[k-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return k
	}

	return -1
}

// parseComponent parses one finite real component.
func parseComponent(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrParse
	}

	return v, nil
}

// Snap returns z with every component whose magnitude is ≤ eps forced to +0.
// Non-finite values are returned unchanged.
func (z Complex) Snap(eps float64) Complex {
	if z.kind != Finite {
		return z
	}
	re, im := z.re, z.im
	if math.Abs(re) <= eps {
		re = 0
	}
	if math.Abs(im) <= eps {
		im = 0
	}

	return Complex{re: re, im: im}
}

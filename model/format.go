package model

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f in its shortest round-trip form. Integral values keep
// a trailing ".0" and very large or very small magnitudes use an exponent.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatFixed renders f with the given number of decimals. When that many
// decimals cannot represent f exactly, the shortest round-trip form is used
// instead so that a written value always reads back unchanged.
func FormatFixed(f float64, decimals int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FormatFloat(f)
	}
	s := strconv.FormatFloat(f, 'f', decimals, 64)
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == f {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseInt parses a decimal int token.
func ParseInt(field, token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, &ParseError{Field: field, Token: token, Err: err}
	}
	return v, nil
}

// ParseInt64 parses a decimal int64 token.
func ParseInt64(field, token string) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Token: token, Err: err}
	}
	return v, nil
}

// ParseFloat parses a float token, accepting the forms FormatFloat produces.
func ParseFloat(field, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Token: token, Err: err}
	}
	return v, nil
}

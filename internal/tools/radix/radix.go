// Package radix converts integer literals between bases 2, 8, 10, and 16.
// Values are arbitrary-size (math/big), so inputs are not bounded by
// machine word width.
package radix

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidDigit indicates a digit outside the base's digit set.
	ErrInvalidDigit = errors.New("invalid digit for base")
	// ErrUnknownBase indicates a base other than 2, 8, 10, or 16.
	ErrUnknownBase = errors.New("unsupported base")
)

// Rendition holds one integer rendered in all four supported bases.
// Hex digits are upper-case.
type Rendition struct {
	Binary  string `json:"binary"`
	Octal   string `json:"octal"`
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
}

// Convert parses literal in the stated base and renders it in all four
// bases. Negative literals keep their sign in every rendition.
func Convert(literal string, base int) (*Rendition, error) {
	switch base {
	case 2, 8, 10, 16:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBase, base)
	}

	s := strings.TrimSpace(literal)
	if s == "" {
		return nil, fmt.Errorf("%w: empty literal in base %d", ErrInvalidDigit, base)
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, literal, base)
	}

	return &Rendition{
		Binary:  n.Text(2),
		Octal:   n.Text(8),
		Decimal: n.Text(10),
		Hex:     strings.ToUpper(n.Text(16)),
	}, nil
}

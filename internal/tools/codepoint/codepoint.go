// Package codepoint maps characters to Unicode code points and back.
package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrOutOfRange indicates a value that is not a Unicode scalar value
	// (beyond U+10FFFF or a surrogate).
	ErrOutOfRange = errors.New("code point out of range")
	// ErrNotSingleChar indicates input that is not exactly one character.
	ErrNotSingleChar = errors.New("input must be a single character")
)

// Info describes one code point in all supported numeral renditions.
type Info struct {
	Char    string `json:"char"`
	Code    int    `json:"code"`
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
	Octal   string `json:"octal"`
	Binary  string `json:"binary"`
}

// Inspect maps a single character to its code point.
func Inspect(s string) (*Info, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return nil, ErrNotSingleChar
	}
	if size != len(s) {
		return nil, fmt.Errorf("%w: got %d characters", ErrNotSingleChar, utf8.RuneCountInString(s))
	}
	info := describe(r)
	return &info, nil
}

// FromCode maps a code point back to its character. Surrogates and values
// beyond U+10FFFF are not scalar values and are rejected.
func FromCode(code int64) (*Info, error) {
	if code < 0 || code > 0x10FFFF {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, code)
	}
	if code >= 0xD800 && code <= 0xDFFF {
		return nil, fmt.Errorf("%w: U+%04X is a surrogate", ErrOutOfRange, code)
	}
	info := describe(rune(code))
	return &info, nil
}

// Table returns the 128 ASCII rows with 7-bit binary renditions.
// Non-printable characters render as an empty Char.
func Table() []Info {
	rows := make([]Info, 128)
	for i := 0; i < 128; i++ {
		info := describe(rune(i))
		info.Binary = fmt.Sprintf("%07b", i)
		if !strconv.IsPrint(rune(i)) && rune(i) != ' ' {
			info.Char = ""
		}
		rows[i] = info
	}
	return rows
}

func describe(r rune) Info {
	n := int64(r)
	return Info{
		Char:    string(r),
		Code:    int(r),
		Decimal: strconv.FormatInt(n, 10),
		Hex:     fmt.Sprintf("%X", n),
		Octal:   strconv.FormatInt(n, 8),
		Binary:  strconv.FormatInt(n, 2),
	}
}

// Package encoding applies named reversible text transforms: Base64, URL
// percent-encoding, hexadecimal, and binary. Decoding is strict; malformed
// input is an error, never a best-effort repair.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrMalformedEncoding indicates input that does not decode under the
	// named scheme.
	ErrMalformedEncoding = errors.New("malformed encoding")
	// ErrUnknownScheme indicates an unsupported transform name.
	ErrUnknownScheme = errors.New("unknown encoding scheme")
)

// Scheme names a reversible transform.
type Scheme string

const (
	SchemeBase64 Scheme = "base64"
	SchemeURL    Scheme = "url"
	SchemeHex    Scheme = "hex"
	SchemeBinary Scheme = "binary"
)

// Schemes returns the supported transforms in display order.
func Schemes() []Scheme {
	return []Scheme{SchemeBase64, SchemeURL, SchemeHex, SchemeBinary}
}

// ParseScheme validates a scheme name.
func ParseScheme(name string) (Scheme, error) {
	switch Scheme(name) {
	case SchemeBase64, SchemeURL, SchemeHex, SchemeBinary:
		return Scheme(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// Encode applies the scheme to the UTF-8 bytes of text.
func Encode(scheme Scheme, text string) (string, error) {
	switch scheme {
	case SchemeBase64:
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	case SchemeURL:
		return url.QueryEscape(text), nil
	case SchemeHex:
		return hex.EncodeToString([]byte(text)), nil
	case SchemeBinary:
		parts := make([]string, len(text))
		for i := 0; i < len(text); i++ {
			parts[i] = fmt.Sprintf("%08b", text[i])
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, string(scheme))
	}
}

// Decode reverses the scheme.
func Decode(scheme Scheme, text string) (string, error) {
	switch scheme {
	case SchemeBase64:
		out, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return string(out), nil
	case SchemeURL:
		out, err := url.QueryUnescape(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return out, nil
	case SchemeHex:
		out, err := hex.DecodeString(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		return string(out), nil
	case SchemeBinary:
		return decodeBinary(text)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, string(scheme))
	}
}

func decodeBinary(text string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		default:
			return r
		}
	}, text)

	if len(compact)%8 != 0 {
		return "", fmt.Errorf("%w: bit count %d is not a multiple of 8", ErrMalformedEncoding, len(compact))
	}

	out := make([]byte, 0, len(compact)/8)
	for i := 0; i < len(compact); i += 8 {
		b, err := strconv.ParseUint(compact[i:i+8], 2, 8)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a binary octet", ErrMalformedEncoding, compact[i:i+8])
		}
		out = append(out, byte(b))
	}
	return string(out), nil
}

package encoding

import (
	"fmt"

	"github.com/saintfish/chardet"
)

// Detection is the best charset guess for a byte sequence.
type Detection struct {
	Charset    string `json:"charset"`
	Language   string `json:"language,omitempty"`
	Confidence int    `json:"confidence"`
}

// Detect guesses the character set of raw bytes.
func Detect(data []byte) (*Detection, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedEncoding)
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	return &Detection{
		Charset:    best.Charset,
		Language:   best.Language,
		Confidence: best.Confidence,
	}, nil
}

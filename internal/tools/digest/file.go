package digest

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// FileDigest is the result of streaming a file through the requested
// algorithms once.
type FileDigest struct {
	Digests map[string]string `json:"digests"`
	MIME    string            `json:"mime"`
	Size    int64             `json:"size"`
}

// sniffLen matches the number of bytes mimetype inspects.
const sniffLen = 3072

// SumReader streams r through every requested algorithm in one pass and
// sniffs the MIME type from the leading bytes. An empty algorithm list
// means all supported algorithms.
func SumReader(r io.Reader, algs []Algorithm) (*FileDigest, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}

	hashes := make(map[Algorithm]hash.Hash, len(algs))
	writers := make([]io.Writer, 0, len(algs))
	for _, alg := range algs {
		h, err := newHash(alg)
		if err != nil {
			return nil, err
		}
		hashes[alg] = h
		writers = append(writers, h)
	}
	mw := io.MultiWriter(writers...)

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	mime := mimetype.Detect(head[:n])

	if _, err := mw.Write(head[:n]); err != nil {
		return nil, err
	}
	rest, err := io.Copy(mw, r)
	if err != nil {
		return nil, err
	}

	out := &FileDigest{
		Digests: make(map[string]string, len(algs)),
		MIME:    mime.String(),
		Size:    int64(n) + rest,
	}
	for alg, h := range hashes {
		out.Digests[string(alg)] = hex.EncodeToString(h.Sum(nil))
	}
	return out, nil
}

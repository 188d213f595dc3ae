package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unitbox/unitbox/internal/tools/digest"
)

// maxUploadBytes caps hash-file uploads at 64 MiB.
const maxUploadBytes = 64 << 20

// HashFile digests an uploaded file in one streaming pass and reports
// the sniffed MIME type. The file is never written to disk.
func (h *Handlers) HashFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	algs, err := requestedAlgorithms(c.PostForm("algorithms"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	result, err := digest.SumReader(f, algs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": header.Filename,
		"size":     result.Size,
		"mime":     result.MIME,
		"digests":  result.Digests,
	})
}

// requestedAlgorithms parses a comma-separated algorithm list; empty
// means all supported algorithms.
func requestedAlgorithms(raw string) ([]digest.Algorithm, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var algs []digest.Algorithm
	for _, name := range strings.Split(raw, ",") {
		alg, err := digest.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/shared/id"
)

// ExportHistory serializes a session's history in the requested format.
// The export is a pure read; the log keeps its records.
func (h *Handlers) ExportHistory(c *gin.Context) {
	sessionID := c.Param("id")

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	name := c.DefaultQuery("format", string(history.FormatCSV))
	format, err := history.ParseFormat(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := s.Log().Export(format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.metrics.RecordExport(string(format))

	filename := fmt.Sprintf("%s.%s", id.NewExportID(), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if acceptsGzip(c) {
		c.Header("Content-Encoding", "gzip")
		c.Header("Content-Type", format.ContentType())
		c.Status(http.StatusOK)

		gz := gzip.NewWriter(c.Writer)
		defer gz.Close()
		if _, err := gz.Write(data); err != nil {
			_ = c.Error(err)
		}
		return
	}

	c.Data(http.StatusOK, format.ContentType(), data)
}

func acceptsGzip(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept-Encoding"), "gzip")
}

package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownFormat indicates an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format selects an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// csvHeader is the fixed column order for CSV exports.
var csvHeader = []string{"timestamp", "category", "source_unit", "target_unit", "input", "output", "precision"}

// tomlDocument wraps records because TOML has no top-level array.
type tomlDocument struct {
	Records []Record `toml:"records"`
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON, FormatYAML, FormatTOML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/octet-stream"
	}
}

// Export serializes the log. It is a pure read: the log is never cleared
// or mutated.
func (l *Log) Export(format Format) ([]byte, error) {
	records := l.Records()

	switch format {
	case FormatCSV:
		return exportCSV(records)
	case FormatJSON:
		return sonic.Marshal(records)
	case FormatYAML:
		return yaml.Marshal(records)
	case FormatTOML:
		return toml.Marshal(tomlDocument{Records: records})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func exportCSV(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(time.RFC3339Nano),
			rec.Category,
			rec.SourceUnit,
			rec.TargetUnit,
			rec.Input,
			rec.Output,
			strconv.Itoa(rec.Precision),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

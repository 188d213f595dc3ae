package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/unit"
)

// ErrInvalidInput indicates a value that does not parse as a decimal number.
var ErrInvalidInput = errors.New("invalid input")

// Bounds configures the precision window for formatted output.
type Bounds struct {
	MinPrecision     int
	MaxPrecision     int
	DefaultPrecision int
}

// DefaultBounds matches the UI slider: 3 to 60 places, default 8.
func DefaultBounds() Bounds {
	return Bounds{MinPrecision: 3, MaxPrecision: 60, DefaultPrecision: 8}
}

// Request is one conversion as entered by the user. Precision nil means
// the configured default.
type Request struct {
	Category  string
	From      string
	To        string
	Value     string
	Precision *int
}

// Outcome carries both the rendered string and the exact decimal so a
// result can be chained into another conversion without reparsing.
type Outcome struct {
	Value     decimal.Decimal
	Formatted string
	Precision int
}

// Dispatcher validates requests and routes them through the registry.
type Dispatcher struct {
	registry *unit.Registry
	bounds   Bounds
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *unit.Registry, bounds Bounds) *Dispatcher {
	return &Dispatcher{registry: registry, bounds: bounds}
}

// Bounds returns the configured precision bounds.
func (d *Dispatcher) Bounds() Bounds {
	return d.bounds
}

// ClampPrecision clamps a requested precision into the configured window.
// Out-of-range values are clamped, never rejected.
func (d *Dispatcher) ClampPrecision(p *int) int {
	if p == nil {
		return d.bounds.DefaultPrecision
	}
	if *p < d.bounds.MinPrecision {
		return d.bounds.MinPrecision
	}
	if *p > d.bounds.MaxPrecision {
		return d.bounds.MaxPrecision
	}
	return *p
}

// Convert performs one conversion. On success the result is appended to
// log; a nil log skips recording. Failed conversions are never recorded.
func (d *Dispatcher) Convert(req Request, log *history.Log) (*Outcome, error) {
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, req.Value)
	}

	precision := d.ClampPrecision(req.Precision)

	out, err := d.registry.Convert(req.Category, req.From, req.To, value)
	if err != nil {
		return nil, err
	}

	// Round-half-to-even keeps results deterministic; String trims
	// trailing zeros the way the UI displays them.
	rounded := out.RoundBank(int32(precision))
	outcome := &Outcome{
		Value:     rounded,
		Formatted: rounded.String(),
		Precision: precision,
	}

	if log != nil {
		log.Append(history.Record{
			Timestamp:  time.Now().UTC(),
			Category:   req.Category,
			SourceUnit: req.From,
			TargetUnit: req.To,
			Input:      value.String(),
			Output:     outcome.Formatted,
			Precision:  precision,
		})
	}

	return outcome, nil
}

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/unit"
)

func newDispatcher() *Dispatcher {
	return NewDispatcher(unit.NewRegistry(), DefaultBounds())
}

func intPtr(i int) *int {
	return &i
}

func TestDispatcherConvert(t *testing.T) {
	d := newDispatcher()

	t.Run("meter to foot", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot",
			Value: "1", Precision: intPtr(9),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "3.280839895", out.Formatted)
		assert.Equal(t, 9, out.Precision)
	})

	t.Run("trailing zeros trimmed", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "temperature", From: "celsius", To: "fahrenheit",
			Value: "0", Precision: intPtr(8),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "32", out.Formatted)
	})

	t.Run("default precision", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot", Value: "1",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 8, out.Precision)
		assert.Equal(t, "3.2808399", out.Formatted)
	})

	t.Run("round half to even", func(t *testing.T) {
		// 0.0025 at three places rounds to the even neighbor
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "meter",
			Value: "0.0025", Precision: intPtr(3),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "0.002", out.Formatted)

		out, err = d.Convert(Request{
			Category: "length", From: "meter", To: "meter",
			Value: "0.0035", Precision: intPtr(3),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "0.004", out.Formatted)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot", Value: "not-a-number",
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("registry errors pass through", func(t *testing.T) {
		_, err := d.Convert(Request{
			Category: "length", From: "meter", To: "cubit", Value: "1",
		}, nil)
		assert.ErrorIs(t, err, unit.ErrUnknownUnit)

		_, err = d.Convert(Request{
			Category: "temperature", From: "celsius", To: "kelvin", Value: "-274",
		}, nil)
		assert.ErrorIs(t, err, unit.ErrOutOfDomain)
	})
}

func TestDispatcherPrecisionClamp(t *testing.T) {
	d := newDispatcher()

	t.Run("above maximum", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot",
			Value: "1", Precision: intPtr(1000),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 60, out.Precision)
	})

	t.Run("below minimum", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot",
			Value: "1", Precision: intPtr(0),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, out.Precision)
		assert.Equal(t, "3.281", out.Formatted)
	})
}

func TestDispatcherHistory(t *testing.T) {
	d := newDispatcher()
	log := history.NewLog()

	t.Run("success appends", func(t *testing.T) {
		out, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot",
			Value: "2", Precision: intPtr(6),
		}, log)
		require.NoError(t, err)
		require.Equal(t, 1, log.Len())

		rec := log.Records()[0]
		assert.Equal(t, "length", rec.Category)
		assert.Equal(t, "meter", rec.SourceUnit)
		assert.Equal(t, "foot", rec.TargetUnit)
		assert.Equal(t, "2", rec.Input)
		assert.Equal(t, out.Formatted, rec.Output)
		assert.Equal(t, 6, rec.Precision)
		assert.False(t, rec.Timestamp.IsZero())
	})

	t.Run("failure never appends", func(t *testing.T) {
		_, err := d.Convert(Request{
			Category: "length", From: "meter", To: "foot", Value: "bogus",
		}, log)
		require.Error(t, err)

		_, err = d.Convert(Request{
			Category: "temperature", From: "celsius", To: "kelvin", Value: "-500",
		}, log)
		require.Error(t, err)

		assert.Equal(t, 1, log.Len())
	})
}

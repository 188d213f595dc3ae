package units

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitbox/unitbox/internal/domain/convert"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/domain/unit"
	"github.com/unitbox/unitbox/internal/shared/types"
)

func newProvider() (*Provider, *session.Manager) {
	registry := unit.NewRegistry()
	dispatcher := convert.NewDispatcher(registry, convert.DefaultBounds())
	sessions := session.NewManager()
	return NewProvider(registry, dispatcher, sessions), sessions
}

func TestProviderDefinition(t *testing.T) {
	p, _ := newProvider()

	def := p.Definition()
	assert.Equal(t, "units", def.ID)
	assert.Equal(t, types.CategoryUnits, def.Category)
	assert.Len(t, def.Tools, 4)
}

func TestProviderCategories(t *testing.T) {
	p, _ := newProvider()

	result, err := p.Execute(context.Background(), "units.categories", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	categories := result.Data["categories"].([]string)
	assert.Contains(t, categories, "length")
	assert.Contains(t, categories, "temperature")
}

func TestProviderUnits(t *testing.T) {
	p, _ := newProvider()

	t.Run("known category", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "units.units", map[string]interface{}{
			"category": "length",
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "meter", result.Data["base"])

		units := result.Data["units"].([]map[string]interface{})
		assert.Equal(t, "meter", units[0]["id"])
	})

	t.Run("unknown category", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "units.units", map[string]interface{}{
			"category": "currency",
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, *result.Error, "unknown category")
	})

	t.Run("missing parameter", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "units.units", map[string]interface{}{}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestProviderConvert(t *testing.T) {
	p, sessions := newProvider()

	t.Run("without session", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "units.convert", map[string]interface{}{
			"category":  "length",
			"from":      "meter",
			"to":        "foot",
			"value":     "1",
			"precision": 9.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "3.280839895", result.Data["value"])
		assert.Equal(t, 9, result.Data["precision"])
	})

	t.Run("with session records history", func(t *testing.T) {
		s := sessions.Create()
		appCtx := &types.Context{SessionID: &s.ID}

		result, err := p.Execute(context.Background(), "units.convert", map[string]interface{}{
			"category": "temperature",
			"from":     "celsius",
			"to":       "fahrenheit",
			"value":    "100",
		}, appCtx)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "212", result.Data["value"])

		require.Equal(t, 1, s.Log().Len())
		rec := s.Log().Records()[0]
		assert.Equal(t, "temperature", rec.Category)
		assert.Equal(t, "212", rec.Output)
	})

	t.Run("failed conversion not recorded", func(t *testing.T) {
		s := sessions.Create()
		appCtx := &types.Context{SessionID: &s.ID}

		result, err := p.Execute(context.Background(), "units.convert", map[string]interface{}{
			"category": "length",
			"from":     "meter",
			"to":       "foot",
			"value":    "bogus",
		}, appCtx)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, 0, s.Log().Len())
	})
}

func TestProviderLabel(t *testing.T) {
	p, _ := newProvider()

	result, err := p.Execute(context.Background(), "units.label", map[string]interface{}{
		"category": "area",
		"unit":     "square_meter",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "meter²", result.Data["label"])
}

func TestProviderUnknownTool(t *testing.T) {
	p, _ := newProvider()

	result, err := p.Execute(context.Background(), "units.bogus", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

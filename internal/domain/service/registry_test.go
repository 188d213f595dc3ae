package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitbox/unitbox/internal/domain/convert"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/domain/unit"
	"github.com/unitbox/unitbox/internal/providers/radix"
	"github.com/unitbox/unitbox/internal/providers/units"
	"github.com/unitbox/unitbox/internal/shared/types"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	unitRegistry := unit.NewRegistry()
	dispatcher := convert.NewDispatcher(unitRegistry, convert.DefaultBounds())
	sessions := session.NewManager()

	require.NoError(t, r.Register(units.NewProvider(unitRegistry, dispatcher, sessions)))
	require.NoError(t, r.Register(radix.NewProvider(sessions)))
	return r
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := newRegistry(t)

	p, ok := r.Get("units")
	assert.True(t, ok)
	assert.Equal(t, "units", p.Definition().ID)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	r.Unregister("radix")
	_, ok = r.Get("radix")
	assert.False(t, ok)
}

func TestRegistryList(t *testing.T) {
	r := newRegistry(t)

	all := r.List(nil)
	require.Len(t, all, 2)
	assert.Equal(t, "radix", all[0].ID, "sorted by ID")
	assert.Equal(t, "units", all[1].ID)

	cat := types.CategoryRadix
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "radix", filtered[0].ID)
}

func TestRegistryDiscover(t *testing.T) {
	r := newRegistry(t)

	results := r.Discover("convert hexadecimal number", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "radix", results[0].ID)
}

func TestRegistryExecute(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	t.Run("routes to provider", func(t *testing.T) {
		result, err := r.Execute(ctx, "radix.convert", map[string]interface{}{
			"value": "255",
			"base":  10,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "FF", result.Data["hex"])
	})

	t.Run("malformed tool ID", func(t *testing.T) {
		result, err := r.Execute(ctx, "noseparator", nil, nil)
		require.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("unknown service", func(t *testing.T) {
		result, err := r.Execute(ctx, "missing.tool", nil, nil)
		require.Error(t, err)
		assert.False(t, result.Success)
	})
}

func TestRegistryStats(t *testing.T) {
	r := newRegistry(t)

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 5, stats["total_tools"])
}

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitbox/unitbox/internal/domain/history"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()

	s := m.Create()
	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Log())
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerEndDiscardsLog(t *testing.T) {
	m := NewManager()
	s := m.Create()

	s.Log().Append(history.Record{Category: "length", Input: "1"})
	assert.Equal(t, 1, s.Log().Len())

	require.NoError(t, m.End(s.ID))
	assert.Equal(t, 0, m.Count())

	_, err := m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.End(s.ID), ErrNotFound)
}

func TestManagerLogResolution(t *testing.T) {
	m := NewManager()
	s := m.Create()

	assert.Nil(t, m.Log(nil))

	empty := ""
	assert.Nil(t, m.Log(&empty))

	missing := "missing"
	assert.Nil(t, m.Log(&missing))

	assert.Same(t, s.Log(), m.Log(&s.ID))
}

func TestManagerSweep(t *testing.T) {
	m := NewManager()

	stale := m.Create()
	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	fresh := m.Create()

	swept := m.Sweep(30 * time.Minute)
	assert.Equal(t, 1, swept)
	assert.Equal(t, 1, m.Count())

	_, err := m.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

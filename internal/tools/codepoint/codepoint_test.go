package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Run("ascii letter", func(t *testing.T) {
		info, err := Inspect("A")
		require.NoError(t, err)
		assert.Equal(t, 65, info.Code)
		assert.Equal(t, "65", info.Decimal)
		assert.Equal(t, "41", info.Hex)
		assert.Equal(t, "101", info.Octal)
		assert.Equal(t, "1000001", info.Binary)
	})

	t.Run("multi-byte rune", func(t *testing.T) {
		info, err := Inspect("€")
		require.NoError(t, err)
		assert.Equal(t, 0x20AC, info.Code)
		assert.Equal(t, "20AC", info.Hex)
	})

	t.Run("astral plane", func(t *testing.T) {
		info, err := Inspect("😀")
		require.NoError(t, err)
		assert.Equal(t, 0x1F600, info.Code)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Inspect("")
		assert.ErrorIs(t, err, ErrNotSingleChar)
	})

	t.Run("multiple characters", func(t *testing.T) {
		_, err := Inspect("ab")
		assert.ErrorIs(t, err, ErrNotSingleChar)
	})
}

func TestFromCode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		info, err := FromCode(65)
		require.NoError(t, err)
		assert.Equal(t, "A", info.Char)

		back, err := Inspect(info.Char)
		require.NoError(t, err)
		assert.Equal(t, 65, back.Code)
	})

	t.Run("maximum scalar value", func(t *testing.T) {
		info, err := FromCode(0x10FFFF)
		require.NoError(t, err)
		assert.Equal(t, "10FFFF", info.Hex)
	})

	t.Run("beyond maximum rejected", func(t *testing.T) {
		_, err := FromCode(0x110000)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := FromCode(-1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("surrogates rejected", func(t *testing.T) {
		_, err := FromCode(0xD800)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = FromCode(0xDFFF)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestTable(t *testing.T) {
	rows := Table()
	require.Len(t, rows, 128)

	assert.Equal(t, 0, rows[0].Code)
	assert.Equal(t, "", rows[0].Char, "control characters have no printable form")
	assert.Equal(t, "0000000", rows[0].Binary)

	assert.Equal(t, "A", rows[65].Char)
	assert.Equal(t, "1000001", rows[65].Binary)

	assert.Equal(t, " ", rows[32].Char)
	assert.Equal(t, "", rows[127].Char, "DEL is not printable")
}

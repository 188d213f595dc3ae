package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("decimal 255", func(t *testing.T) {
		r, err := Convert("255", 10)
		require.NoError(t, err)
		assert.Equal(t, "FF", r.Hex)
		assert.Equal(t, "377", r.Octal)
		assert.Equal(t, "11111111", r.Binary)
		assert.Equal(t, "255", r.Decimal)
	})

	t.Run("hex FF round trip", func(t *testing.T) {
		r, err := Convert("FF", 16)
		require.NoError(t, err)
		assert.Equal(t, "255", r.Decimal)
	})

	t.Run("lower case hex accepted", func(t *testing.T) {
		r, err := Convert("ff", 16)
		require.NoError(t, err)
		assert.Equal(t, "255", r.Decimal)
	})

	t.Run("negative literal", func(t *testing.T) {
		r, err := Convert("-1010", 2)
		require.NoError(t, err)
		assert.Equal(t, "-10", r.Decimal)
		assert.Equal(t, "-A", r.Hex)
	})

	t.Run("arbitrary size", func(t *testing.T) {
		r, err := Convert("340282366920938463463374607431768211456", 10) // 2^128
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000000000000000", r.Hex)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		r, err := Convert("  42 ", 10)
		require.NoError(t, err)
		assert.Equal(t, "2A", r.Hex)
	})
}

func TestConvertErrors(t *testing.T) {
	t.Run("digit exceeds base", func(t *testing.T) {
		_, err := Convert("129", 8)
		assert.ErrorIs(t, err, ErrInvalidDigit)

		_, err = Convert("2", 2)
		assert.ErrorIs(t, err, ErrInvalidDigit)

		_, err = Convert("G", 16)
		assert.ErrorIs(t, err, ErrInvalidDigit)
	})

	t.Run("empty literal", func(t *testing.T) {
		_, err := Convert("", 10)
		assert.ErrorIs(t, err, ErrInvalidDigit)
	})

	t.Run("unsupported base", func(t *testing.T) {
		_, err := Convert("123", 36)
		assert.ErrorIs(t, err, ErrUnknownBase)
	})
}

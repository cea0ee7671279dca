package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

func TestNewCity(t *testing.T) {
	t.Run("valid city", func(t *testing.T) {
		c, err := NewCity("2000", "Neuchatel")
		require.NoError(t, err)
		assert.Equal(t, "2000", c.ZipCode())
		assert.Equal(t, "Neuchatel", c.Name())
		assert.True(t, c.IsTransient())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		c, err := NewCity(" 2000 ", " Neuchatel ")
		require.NoError(t, err)
		assert.Equal(t, "2000", c.ZipCode())
		assert.Equal(t, "Neuchatel", c.Name())
	})

	t.Run("empty zip code", func(t *testing.T) {
		_, err := NewCity("", "Neuchatel")
		require.ErrorIs(t, err, ErrEmptyZipCode)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewCity("2000", "  ")
		require.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestCity_Equals(t *testing.T) {
	a := Rehydrate(1, "2000", "Neuchatel")
	b := Rehydrate(1, "2000", "Neuchatel")
	other := Rehydrate(2, "1000", "Lausanne")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(other))

	transient, err := NewCity("2000", "Neuchatel")
	require.NoError(t, err)
	assert.False(t, transient.Equals(a))
}

package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferMappingRoundTrip(t *testing.T) {
	pairs := map[string]int64{"recA1b2C3": 1, "recD4e5F6": 2, "recG7h8I9": 3}
	m, err := NewOfferMapping(pairs)
	require.NoError(t, err)

	for ext, num := range pairs {
		gotNum, err := m.ToNumeric(ext)
		require.NoError(t, err)
		gotExt, err := m.ToExternal(gotNum)
		require.NoError(t, err)
		assert.Equal(t, ext, gotExt)

		gotExt, err = m.ToExternal(num)
		require.NoError(t, err)
		gotNum, err = m.ToNumeric(gotExt)
		require.NoError(t, err)
		assert.Equal(t, num, gotNum)
	}
}

func TestOfferMappingUnmapped(t *testing.T) {
	m, err := NewOfferMapping(map[string]int64{"recA": 1})
	require.NoError(t, err)

	_, err = m.ToNumeric("recZ")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = m.ToExternal(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOfferMappingRejectsDuplicateNumericID(t *testing.T) {
	_, err := NewOfferMapping(map[string]int64{"recA": 1, "recB": 1})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewOfferMapping(map[string]int64{"recA": 0})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestOfferMappingPairsIsACopy(t *testing.T) {
	m, err := NewOfferMapping(map[string]int64{"recA": 1})
	require.NoError(t, err)

	p := m.Pairs()
	p["recB"] = 2

	_, err = m.ToNumeric("recB")
	assert.ErrorIs(t, err, ErrNotFound)
}

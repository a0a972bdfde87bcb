package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConverter_ToCentimeters(t *testing.T) {
	c := DefaultConverter{}

	v, err := c.ToCentimeters(10, "in")
	require.NoError(t, err)
	assert.InDelta(t, 25.4, v, 0.0001)

	v, err = c.ToCentimeters(2, "m")
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)

	v, err = c.ToCentimeters(5, "")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "blank unit defaults to centimeters")
}

func TestDefaultConverter_ToGrams(t *testing.T) {
	c := DefaultConverter{}

	v, err := c.ToGrams(1, "kg")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)

	v, err = c.ToGrams(1, "lb")
	require.NoError(t, err)
	assert.InDelta(t, 453.59237, v, 0.0001)
}

func TestDefaultConverter_UnsupportedUnit(t *testing.T) {
	c := DefaultConverter{}

	_, err := c.ToCentimeters(1, "furlong")
	assert.Error(t, err)

	_, err = c.ToGrams(1, "stone")
	assert.Error(t, err)
}

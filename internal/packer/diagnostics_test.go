package packer

import (
	"errors"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHowManyFit_UnitCubeCapEight(t *testing.T) {
	box := model.NewBox("Cube4", 4, 4, 4, 0)

	packed, remaining := HowManyFit(model.NewDimensions(1, 1, 1), box, 8)

	assert.Equal(t, 8, packed)
	assert.Equal(t, 56.0, remaining)
}

func TestHowManyFit_ItemDoesNotFitAtAll(t *testing.T) {
	box := model.NewBox("Small", 2, 2, 2, 0)

	packed, remaining := HowManyFit(model.NewDimensions(5, 5, 5), box, 10)

	assert.Equal(t, 0, packed)
	assert.Equal(t, box.Interior.Volume(), remaining)
}

func TestSpaceAfterPacking_DoesNotFit(t *testing.T) {
	box := model.NewBox("Small", 4, 4, 4, 0)

	_, _, err := SpaceAfterPacking(model.NewDimensions(5, 5, 5), box)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDoesNotFit))
}

func TestSpaceAfterPacking_ReportsResidualVolume(t *testing.T) {
	box := model.NewBox("Tall", 5, 5, 10, 0)

	residuals, volume, err := SpaceAfterPacking(model.NewDimensions(5, 5, 5), box)

	require.NoError(t, err)
	assert.NotEmpty(t, residuals)
	assert.Equal(t, box.Interior.Volume()-125.0, volume)
}

package packer

import (
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEstimateBoxesNeeded_VolumeRatioWithWaste(t *testing.T) {
	box := model.NewBox("Crate", 10, 10, 10, 0)
	items := make([]model.Item, 15)
	for i := range items {
		items[i] = model.NewItem("widget", 5, 5, 5, 0)
	}

	est := EstimateBoxesNeeded(items, box, 20, 2.5)

	assert.Equal(t, 1000.0, est.BoxInteriorVolume)
	assert.InDelta(t, 1.875, est.BoxesNeededExact, 0.001)
	assert.Equal(t, 2, est.BoxesNeededMin)
	assert.Equal(t, 3, est.BoxesWithWaste)
	assert.Equal(t, 7.5, est.EstimatedCost)
}

func TestEstimateBoxesNeeded_ZeroVolumeBoxIsSafe(t *testing.T) {
	box := model.Box{Name: "Invalid"}
	items := []model.Item{model.NewItem("a", 1, 1, 1, 0)}

	est := EstimateBoxesNeeded(items, box, 0, 0)

	assert.Equal(t, 0, est.BoxesNeededMin)
	assert.Equal(t, 0.0, est.EstimatedCost)
}

package packer

import (
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestFit_ExactCube_NoResiduals(t *testing.T) {
	item := model.NewDimensions(10, 10, 10)
	block := model.NewDimensions(10, 10, 10)

	residuals := BestFit(item, block)
	assert.Empty(t, residuals, "an item that exactly fills the block leaves nothing behind")
}

func TestBestFit_DoubleHeight_EmitsUpperLayer(t *testing.T) {
	item := model.NewDimensions(5, 5, 5)
	block := model.NewDimensions(5, 5, 10)

	residuals := BestFit(item, block)
	require.NotEmpty(t, residuals)

	var totalVolume float64
	for _, r := range residuals {
		totalVolume += r.Volume()
	}
	assert.Equal(t, block.Volume()-item.Volume(), totalVolume)
}

func TestBestFit_ResidualsSortedAscendingByVolume(t *testing.T) {
	item := model.NewDimensions(2, 3, 4)
	block := model.NewDimensions(10, 10, 10)

	residuals := BestFit(item, block)
	for i := 1; i < len(residuals); i++ {
		assert.LessOrEqual(t, residuals[i-1].Volume(), residuals[i].Volume())
	}
}

func TestBestFit_SingleStack_ConservesVolume(t *testing.T) {
	// block[0]=6 is >= item[2]=4 but < 2*item[2]=8 and not equal to it on
	// any axis, forcing the single-stack branch. The ground-level
	// partition must keep the block's full height on that axis (6), not
	// the item's height (4), or residual volume silently leaks.
	item := model.NewDimensions(2, 3, 4)
	block := model.NewDimensions(6, 7, 7)

	residuals := BestFit(item, block)
	require.NotEmpty(t, residuals)

	var total float64
	for _, r := range residuals {
		total += r.Volume()
	}
	assert.Equal(t, block.Volume()-item.Volume(), total)
}

func TestBestFit_NeverEmitsZeroDimensionBlock(t *testing.T) {
	item := model.NewDimensions(4, 4, 4)
	block := model.NewDimensions(4, 4, 8)

	for _, r := range BestFit(item, block) {
		assert.False(t, r.IsZero(), "zero-dimension residuals must be discarded, got %v", r)
	}
}

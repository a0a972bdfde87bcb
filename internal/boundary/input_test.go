package boundary

import (
	"errors"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPackInput_ExpandsQuantityAndConvertsUnits(t *testing.T) {
	items := []model.ItemRequest{
		{ID: "widget", Width: 1, Length: 1, Height: 1, Weight: 1, DimensionUnit: "in", MassUnit: "lb", Quantity: 3},
	}
	boxes := []model.BoxRequest{
		{Name: "Crate", Width: 10, Length: 10, Height: 10, TareWeight: 100, DimensionUnit: "in", MassUnit: "g"},
	}

	input, err := BuildPackInput(items, boxes, DefaultConverter{})
	require.NoError(t, err)

	require.Len(t, input.Items, 3)
	assert.InDelta(t, 2.54, input.Items[0].Dims[0], 0.0001)
	assert.InDelta(t, 453.59237, input.Items[0].Weight, 0.0001)

	require.Len(t, input.Boxes, 1)
	assert.Equal(t, "Crate", input.Boxes[0].Name)
}

func TestBuildPackInput_FiltersBoxesThatCannotHoldEveryItem(t *testing.T) {
	items := []model.ItemRequest{
		{ID: "big", Width: 50, Length: 50, Height: 50, Weight: 1, Quantity: 1},
	}
	boxes := []model.BoxRequest{
		{Name: "TooSmall", Width: 1, Length: 1, Height: 1},
		{Name: "BigEnough", Width: 100, Length: 100, Height: 100},
	}

	input, err := BuildPackInput(items, boxes, DefaultConverter{})
	require.NoError(t, err)

	require.Len(t, input.Boxes, 1)
	assert.Equal(t, "BigEnough", input.Boxes[0].Name)
}

func TestBuildPackInput_NoBoxFitsAnyItem(t *testing.T) {
	items := []model.ItemRequest{{ID: "a", Width: 50, Length: 50, Height: 50, Weight: 1, Quantity: 1}}
	boxes := []model.BoxRequest{{Name: "Tiny", Width: 1, Length: 1, Height: 1}}

	_, err := BuildPackInput(items, boxes, DefaultConverter{})
	assert.ErrorIs(t, err, model.ErrNoBoxesFit)
}

func TestBuildPackInput_RejectsDuplicateBoxNames(t *testing.T) {
	items := []model.ItemRequest{{ID: "a", Width: 1, Length: 1, Height: 1, Weight: 1, Quantity: 1}}
	boxes := []model.BoxRequest{
		{Name: "Dup", Width: 10, Length: 10, Height: 10},
		{Name: "Dup", Width: 20, Length: 20, Height: 20},
	}

	_, err := BuildPackInput(items, boxes, DefaultConverter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDuplicateBoxName))
}

func TestBuildPackInput_RejectsEmptyInputs(t *testing.T) {
	_, err := BuildPackInput(nil, []model.BoxRequest{{Name: "A", Width: 1, Length: 1, Height: 1}}, DefaultConverter{})
	assert.ErrorIs(t, err, model.ErrNoItems)

	_, err = BuildPackInput([]model.ItemRequest{{ID: "a", Width: 1, Length: 1, Height: 1, Quantity: 1}}, nil, DefaultConverter{})
	assert.ErrorIs(t, err, model.ErrNoBoxesFit)
}

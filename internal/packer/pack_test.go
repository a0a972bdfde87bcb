package packer

import (
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_SelectsFewestParcelBox(t *testing.T) {
	items := []model.Item{
		model.NewItem("A", 5, 5, 5, 100),
		model.NewItem("B", 5, 5, 5, 100),
	}
	boxes := []model.Box{
		model.NewBox("Snug", 5, 5, 10, 0),
		model.NewBox("Huge", 50, 50, 50, 0),
	}

	result, err := Pack(items, boxes, 10000)

	require.NoError(t, err)
	assert.Equal(t, "Snug", result.Box.Name)
	assert.Len(t, result.Parcels, 1)
}

func TestPack_EmptyItemsIsRejected(t *testing.T) {
	_, err := Pack(nil, []model.Box{model.NewBox("A", 1, 1, 1, 0)}, 1000)
	assert.ErrorIs(t, err, model.ErrNoItems)
}

func TestPack_NoBoxesIsRejected(t *testing.T) {
	_, err := Pack([]model.Item{model.NewItem("A", 1, 1, 1, 0)}, nil, 1000)
	assert.ErrorIs(t, err, model.ErrNoBoxesFit)
}

func TestPack_NoBoxFitsTheItemAtAll(t *testing.T) {
	items := []model.Item{model.NewItem("A", 100, 100, 100, 0)}
	boxes := []model.Box{model.NewBox("Small", 1, 1, 1, 0)}

	_, err := Pack(items, boxes, 1000)
	assert.ErrorIs(t, err, model.ErrNoBoxesFit)
}

func TestPack_ItemTooHeavyForAnyBox(t *testing.T) {
	items := []model.Item{model.NewItem("A", 1, 1, 1, 9000)}
	boxes := []model.Box{model.NewBox("Small", 1, 1, 1, 0)}

	_, err := Pack(items, boxes, 1000)
	assert.ErrorIs(t, err, model.ErrItemTooHeavy)
}

func TestPack_DowngradesTailParcelToSmallerBox(t *testing.T) {
	items := make([]model.Item, 0, 29)
	for i := 0; i < 28; i++ {
		items = append(items, model.NewItem("cube", 1, 1, 1, 0))
	}

	boxes := []model.Box{
		model.NewBox("Cube3", 3, 3, 3, 0),
		model.NewBox("Cube2", 2, 2, 2, 0),
	}

	result, err := Pack(items, boxes, 100000)

	require.NoError(t, err)
	assert.Equal(t, "Cube3", result.Box.Name)
	require.Len(t, result.Parcels, 2)

	require.NotNil(t, result.LastParcel)
	assert.Equal(t, "Cube2", result.LastParcel.Box.Name)
	assert.Less(t, result.LastParcel.Box.Volume(), result.Box.Volume())
}

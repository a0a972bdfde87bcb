package packer

import (
	"testing"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDowngradeLastParcel_FindsSmallerBoxForTailParcel(t *testing.T) {
	big := model.NewBox("Big", 10, 10, 10, 0)
	small := model.NewBox("Small", 3, 3, 3, 0)
	boxes := []model.Box{big, small}

	parcels := []model.Parcel{
		{Items: []model.Item{model.NewItem("a", 1, 1, 1, 0)}},
		{Items: []model.Item{model.NewItem("b", 1, 1, 1, 0)}},
	}

	downgraded := DowngradeLastParcel(boxes, big, parcels, 1000)

	require.NotNil(t, downgraded)
	assert.Equal(t, "Small", downgraded.Box.Name)
	assert.Len(t, downgraded.Parcel.Items, 1)
}

func TestDowngradeLastParcel_SkipsWhenOnlyOneParcel(t *testing.T) {
	big := model.NewBox("Big", 10, 10, 10, 0)
	boxes := []model.Box{big}
	parcels := []model.Parcel{{Items: []model.Item{model.NewItem("a", 1, 1, 1, 0)}}}

	assert.Nil(t, DowngradeLastParcel(boxes, big, parcels, 1000))
}

func TestDowngradeLastParcel_SkipsBoxesTheItemCannotFit(t *testing.T) {
	big := model.NewBox("Big", 10, 10, 10, 0)
	tooSmall := model.NewBox("TooSmall", 1, 1, 1, 0)
	boxes := []model.Box{big, tooSmall}

	parcels := []model.Parcel{
		{Items: []model.Item{model.NewItem("a", 2, 2, 2, 0)}},
		{Items: []model.Item{model.NewItem("b", 2, 2, 2, 0)}},
	}

	assert.Nil(t, DowngradeLastParcel(boxes, big, parcels, 1000))
}

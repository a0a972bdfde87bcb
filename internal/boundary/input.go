package boundary

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/model"
)

// PackInput is the canonical, unit-converted, quantity-expanded input
// internal/packer.Pack consumes.
type PackInput struct {
	Items []model.Item
	Boxes []model.Box
}

// BuildPackInput is the sole entry point from request shapes into the
// packer's native types: it expands each ItemRequest's Quantity into that
// many model.Item values, converts every dimension and weight into the
// packer's native units via converter, canonicalizes each resulting
// triple (model.NewItem sorts ascending), rejects duplicate box names,
// and filters candidate boxes down to those that can hold every expanded
// item on their own — so internal/packer never has to guess whether a
// box is dimensionally viable.
func BuildPackInput(items []model.ItemRequest, boxes []model.BoxRequest, converter UnitConverter) (PackInput, error) {
	if len(items) == 0 {
		return PackInput{}, model.ErrNoItems
	}
	if len(boxes) == 0 {
		return PackInput{}, model.ErrNoBoxesFit
	}

	expandedItems, err := expandItems(items, converter)
	if err != nil {
		return PackInput{}, err
	}

	convertedBoxes, err := convertBoxes(boxes, converter)
	if err != nil {
		return PackInput{}, err
	}

	candidateBoxes := make([]model.Box, 0, len(convertedBoxes))
	for _, b := range convertedBoxes {
		if fitsEveryItem(expandedItems, b) {
			candidateBoxes = append(candidateBoxes, b)
		}
	}
	if len(candidateBoxes) == 0 {
		return PackInput{}, model.ErrNoBoxesFit
	}

	return PackInput{Items: expandedItems, Boxes: candidateBoxes}, nil
}

func expandItems(requests []model.ItemRequest, converter UnitConverter) ([]model.Item, error) {
	var items []model.Item
	for i, r := range requests {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("boundary: item %d (%q) has non-positive quantity %d", i, r.Label, r.Quantity)
		}

		w, err := converter.ToCentimeters(r.Width, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		l, err := converter.ToCentimeters(r.Length, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		h, err := converter.ToCentimeters(r.Height, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		weight, err := converter.ToGrams(r.Weight, r.MassUnit)
		if err != nil {
			return nil, err
		}
		if w <= 0 || l <= 0 || h <= 0 {
			return nil, fmt.Errorf("boundary: item %d (%q) has a non-positive dimension", i, r.Label)
		}

		id := r.ID
		for n := 0; n < r.Quantity; n++ {
			itemID := id
			if r.Quantity > 1 {
				itemID = fmt.Sprintf("%s#%d", id, n+1)
			}
			items = append(items, model.NewItem(itemID, w, l, h, weight))
		}
	}
	return items, nil
}

func convertBoxes(requests []model.BoxRequest, converter UnitConverter) ([]model.Box, error) {
	seen := make(map[string]bool, len(requests))
	boxes := make([]model.Box, 0, len(requests))

	for i, r := range requests {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: %q", model.ErrDuplicateBoxName, r.Name)
		}
		seen[r.Name] = true

		w, err := converter.ToCentimeters(r.Width, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		l, err := converter.ToCentimeters(r.Length, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		h, err := converter.ToCentimeters(r.Height, r.DimensionUnit)
		if err != nil {
			return nil, err
		}
		tare, err := converter.ToGrams(r.TareWeight, r.MassUnit)
		if err != nil {
			return nil, err
		}
		if w <= 0 || l <= 0 || h <= 0 {
			return nil, fmt.Errorf("boundary: box %d (%q) has a non-positive dimension", i, r.Name)
		}

		box := model.NewBox(r.Name, w, l, h, tare)
		box.Description = r.Description
		boxes = append(boxes, box)
	}
	return boxes, nil
}

func fitsEveryItem(items []model.Item, box model.Box) bool {
	for _, it := range items {
		if !model.Fits(it.Dims, box.Interior) {
			return false
		}
	}
	return true
}

package model

// Item is a single rectangular piece to be packed. Multiplicity is
// represented by repeating an Item in the input slice, never by a
// quantity field on Item itself — quantity expansion happens at the
// boundary (see internal/boundary), not inside the packer.
type Item struct {
	ID     string
	Dims   Dimensions
	Weight float64
}

// NewItem builds an Item, sorting its dimensions ascending.
func NewItem(id string, w, l, h, weight float64) Item {
	return Item{
		ID:     id,
		Dims:   NewDimensions(w, l, h),
		Weight: weight,
	}
}

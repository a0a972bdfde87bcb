package model

// Box is a candidate shipping box type. Boxes are unique by Name within a
// single packing call; duplicate names are rejected at the boundary, not
// here.
type Box struct {
	Name        string
	Interior    Dimensions
	TareWeight  float64
	Description string
}

// NewBox builds a Box, sorting its interior dimensions ascending.
func NewBox(name string, w, l, h, tareWeight float64) Box {
	return Box{
		Name:       name,
		Interior:   NewDimensions(w, l, h),
		TareWeight: tareWeight,
	}
}

// Volume returns the interior volume of the box.
func (b Box) Volume() float64 {
	return b.Interior.Volume()
}

// Block is an axis-aligned rectangular void inside a parcel, tracked only
// by its sorted dimensions. Blocks carry no coordinates — the algorithm
// never tracks absolute positions.
type Block = Dimensions

package model

// Parcel is one physical box instance containing a list of placed items,
// in the order they were placed. Parcels carry no coordinates for their
// items — only membership.
type Parcel struct {
	Items []Item
}

// ItemsWeight returns the sum of the weights of the items in the parcel,
// excluding box tare.
func (p Parcel) ItemsWeight() float64 {
	var total float64
	for _, it := range p.Items {
		total += it.Weight
	}
	return total
}

// TotalWeight returns the parcel's items weight plus the given box tare.
func (p Parcel) TotalWeight(tareWeight float64) float64 {
	return p.ItemsWeight() + tareWeight
}

// LastParcel is the optional downgrade result: the final parcel of a
// multi-parcel shipment repacked into a smaller box that holds it in a
// single unit.
type LastParcel struct {
	Box    Box
	Parcel Parcel
}

// PackResult is the outcome of a successful Pack call.
type PackResult struct {
	Box        Box
	Parcels    []Parcel
	LastParcel *LastParcel
}

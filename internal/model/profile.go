package model

// BoxProfile is a named palette of candidate boxes plus a
// default max weight — e.g. a carrier's standard box sizes.
type BoxProfile struct {
	Name                  string  `json:"name"`
	Description           string  `json:"description"`
	Boxes                 []Box   `json:"boxes"`
	DefaultMaxWeightGrams float64 `json:"default_max_weight_grams"`
	IsBuiltIn             bool    `json:"is_built_in"`
}

// BuiltInBoxProfiles are the box profiles shipped with boxpacker.
var BuiltInBoxProfiles = []BoxProfile{
	{
		Name:                  "USPS Flat Rate",
		Description:           "USPS flat-rate box sizes (interior, cm)",
		DefaultMaxWeightGrams: 31751, // 70 lb USPS flat-rate weight limit
		IsBuiltIn:             true,
		Boxes: []Box{
			NewBox("USPS Small Flat Rate", 21.9, 13.7, 5.1, 0),
			NewBox("USPS Medium Flat Rate", 28.6, 27.3, 6.4, 0),
			NewBox("USPS Large Flat Rate", 30.2, 30.2, 14.0, 0),
		},
	},
	{
		Name:                  "UPS Standard",
		Description:           "UPS standard parcel box sizes (interior, cm)",
		DefaultMaxWeightGrams: 31751,
		IsBuiltIn:             true,
		Boxes: []Box{
			NewBox("UPS Small", 33.0, 23.0, 18.0, 300),
			NewBox("UPS Medium", 46.0, 31.0, 31.0, 450),
			NewBox("UPS Large", 61.0, 46.0, 46.0, 700),
		},
	},
	{
		Name:                  "Generic",
		Description:           "Generic small/medium/large cube boxes (interior, cm)",
		DefaultMaxWeightGrams: DefaultMaxWeightGrams,
		IsBuiltIn:             true,
		Boxes: []Box{
			NewBox("Small Box", 20, 20, 20, 200),
			NewBox("Medium Box", 35, 35, 35, 400),
			NewBox("Large Box", 50, 50, 50, 600),
		},
	},
}

// GetBoxProfile returns a built-in profile by name, or the Generic profile
// if name is not found.
func GetBoxProfile(name string) BoxProfile {
	for _, p := range BuiltInBoxProfiles {
		if p.Name == name {
			return p
		}
	}
	return BuiltInBoxProfiles[len(BuiltInBoxProfiles)-1]
}

// BoxProfileNames returns the names of all built-in box profiles.
func BoxProfileNames() []string {
	names := make([]string, len(BuiltInBoxProfiles))
	for i, p := range BuiltInBoxProfiles {
		names[i] = p.Name
	}
	return names
}

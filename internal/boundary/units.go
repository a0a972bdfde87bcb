package boundary

import (
	"fmt"
	"strings"
)

// UnitConverter turns caller-supplied dimension and weight values into
// the centimeters/grams internal/model works in. A production system
// would back this with a real conversion service; DefaultConverter is a
// stand-in covering a fixed unit set.
type UnitConverter interface {
	ToCentimeters(value float64, unit string) (float64, error)
	ToGrams(value float64, unit string) (float64, error)
}

// DefaultConverter supports the dimension units cm/mm/in/m and the mass
// units g/kg/lb/oz, case-insensitively.
type DefaultConverter struct{}

var lengthToCM = map[string]float64{
	"cm": 1,
	"mm": 0.1,
	"in": 2.54,
	"m":  100,
}

var massToGrams = map[string]float64{
	"g":  1,
	"kg": 1000,
	"lb": 453.59237,
	"oz": 28.349523125,
}

func (DefaultConverter) ToCentimeters(value float64, unit string) (float64, error) {
	if unit == "" {
		unit = "cm"
	}
	factor, ok := lengthToCM[normalizeUnit(unit)]
	if !ok {
		return 0, fmt.Errorf("boundary: unsupported dimension unit %q", unit)
	}
	return value * factor, nil
}

func (DefaultConverter) ToGrams(value float64, unit string) (float64, error) {
	if unit == "" {
		unit = "g"
	}
	factor, ok := massToGrams[normalizeUnit(unit)]
	if !ok {
		return 0, fmt.Errorf("boundary: unsupported mass unit %q", unit)
	}
	return value * factor, nil
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

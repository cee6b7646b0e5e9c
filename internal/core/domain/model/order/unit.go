package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Unit is the unit of measure of a line item's quantity.
// It is fixed when the line item is created and never changes.
type Unit int

const (
	// UnitUnknown represents an invalid or undefined unit.
	UnitUnknown Unit = iota

	// Feet measures linear material in feet.
	Feet

	// Meters measures linear material in meters.
	Meters

	// Pieces counts discrete items.
	Pieces
)

func getUnitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown: "Unknown",
		Feet:        "feet",
		Meters:      "meters",
		Pieces:      "pieces",
	}
}

func getValidUnitStrings() map[Unit]string {
	//nolint:exhaustive // UnitUnknown is intentionally excluded as it's invalid
	return map[Unit]string{
		Feet:   "feet",
		Meters: "meters",
		Pieces: "pieces",
	}
}

// UnitFromString parses a wire name ("feet", "meters", "pieces") into a Unit.
// The match is exact and case-sensitive.
func UnitFromString(s string) (Unit, error) {
	for unit, name := range getValidUnitStrings() {
		if name == s {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause("unit is invalid",
		fmt.Errorf("%q is not one of feet, meters, pieces", s))
}

// Validate checks if the Unit value is valid.
func (u Unit) Validate() error {
	if _, ok := getValidUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit is invalid", fmt.Errorf("%d is not a valid unit", u))
	}
	return nil
}

// String returns the lowercase wire name of the unit, e.g. "pieces".
// Returns "Unknown" for invalid unit values. Implements fmt.Stringer.
func (u Unit) String() string {
	if str, ok := getUnitStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

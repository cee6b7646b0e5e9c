package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// quantityScale is the number of decimal places a quantity may carry.
// Ordered and shipped quantities are stored as decimal(12,2) columns, and
// every comparison in the ledger must be exact at this precision.
const quantityScale = 2

// maxQuantity is the largest value a decimal(12,2) column can hold.
var maxQuantity = decimal.RequireFromString("9999999999.99")

// Quantity is a value object representing an exact decimal quantity with at
// most two decimal places. It backs both ordered quantities and the running
// shipped totals of the ledger, so its arithmetic never goes through floating
// point: additions, subtractions, and comparisons are exact.
//
// The zero value is a valid quantity of zero; shipped totals start there.
// Construct non-zero quantities through NewQuantity or QuantityFromString.
//
// Quantity is immutable. Every operation returns a new value.
type Quantity struct {
	value decimal.Decimal
}

// ZeroQuantity returns the quantity 0.00, the starting point of every line
// item's shipped total.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero}
}

// NewQuantity creates a Quantity from a decimal value. The value must be
// non-negative and carry at most two decimal places; anything finer would
// make ledger comparisons depend on rounding.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is negative", value.String()))
	}
	if value.Exponent() < -quantityScale {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s has more than %d decimal places", value.String(), quantityScale))
	}
	if value.GreaterThan(maxQuantity) {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity",
			value.String(), "0", maxQuantity.String())
	}
	return Quantity{value: value}, nil
}

// QuantityFromString parses a decimal string such as "100" or "12.50" into a
// Quantity. Used at the boundary when quantities arrive as request fields.
func QuantityFromString(s string) (Quantity, error) {
	if s == "" {
		return Quantity{}, errs.NewValueIsRequiredError("quantity")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return NewQuantity(value)
}

// Add returns the sum of the two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Sub returns the difference q - other. Returns an error if the result
// would be negative; the ledger never holds a negative quantity.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	result := q.value.Sub(other.value)
	if result.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s minus %s is negative", q.value.String(), other.value.String()))
	}
	return Quantity{value: result}, nil
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// IsPositive reports whether the quantity is strictly greater than zero.
func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

// IsEqual reports whether the two quantities are numerically equal.
// 100 and 100.00 compare equal.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// LessThan reports whether q is strictly less than other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// GreaterThan reports whether q is strictly greater than other.
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// String returns the quantity rendered at ledger precision, e.g. "40.00".
// Implements fmt.Stringer.
func (q Quantity) String() string {
	return q.value.StringFixed(quantityScale)
}

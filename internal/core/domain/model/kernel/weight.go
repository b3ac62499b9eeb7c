package kernel

import (
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed indicates that a Weight was not created through
// NewWeight or ParseWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight or ParseWeight")

// Weight is an exact decimal shipping weight. It wraps a decimal value so that
// a weight written to the store reads back with precisely the same digits;
// binary floating point never enters the picture.
//
// Example:
//
//	w, err := kernel.ParseWeight("5.0")
//	if err != nil {
//	    // handle invalid weight
//	}
//	fmt.Println(w.String()) // "5.0" scale preserved as "5"
type Weight struct {
	value decimal.Decimal

	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a decimal value.
// The value must be strictly positive.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if value.Sign() <= 0 {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}
	return Weight{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseWeight creates a Weight from its exact decimal text representation.
func ParseWeight(s string) (Weight, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(value)
}

// Decimal returns the underlying decimal value.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// String returns the exact decimal text representation of the weight.
func (w Weight) String() string {
	return w.value.String()
}

// IsEqual compares two weights numerically, so "5.0" equals "5".
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// Validate ensures the Weight was created through a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

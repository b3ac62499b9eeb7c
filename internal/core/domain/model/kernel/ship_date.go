package kernel

import (
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// shipDateLayout is the canonical text form of a shipping date.
const shipDateLayout = "2006-01-02"

// ErrShipDateIsNotConstructed indicates that a ShipDate was not created
// through NewShipDate, ShipDateFromTime, or ParseShipDate.
var ErrShipDateIsNotConstructed = errs.NewValueIsRequiredError("ship date must be created via NewShipDate, ShipDateFromTime, or ParseShipDate")

// ShipDate is a calendar date with no time-of-day component. Dates are stored
// and compared in UTC at midnight, so two ShipDate values representing the
// same calendar day are always equal regardless of how they were constructed.
//
// Example:
//
//	d := kernel.NewShipDate(2022, time.June, 25)
//	fmt.Println(d.String()) // "2022-06-25"
type ShipDate struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewShipDate creates a ShipDate for the given calendar day.
func NewShipDate(year int, month time.Month, day int) ShipDate {
	return ShipDate{
		date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// ShipDateFromTime creates a ShipDate from a time value, discarding the
// time-of-day and location.
func ShipDateFromTime(t time.Time) ShipDate {
	return NewShipDate(t.Year(), t.Month(), t.Day())
}

// ParseShipDate creates a ShipDate from its "2006-01-02" text representation.
func ParseShipDate(s string) (ShipDate, error) {
	t, err := time.Parse(shipDateLayout, s)
	if err != nil {
		return ShipDate{}, errs.NewValueIsInvalidErrorWithCause("ship date", err)
	}
	return ShipDateFromTime(t), nil
}

// Time returns the date as midnight UTC.
func (d ShipDate) Time() time.Time {
	return d.date
}

// String returns the "2006-01-02" text representation.
func (d ShipDate) String() string {
	return d.date.Format(shipDateLayout)
}

// IsEqual compares two ship dates by calendar day.
func (d ShipDate) IsEqual(other ShipDate) bool {
	return d.date.Equal(other.date)
}

// Validate ensures the ShipDate was created through a constructor.
func (d ShipDate) Validate() error {
	return d.guard.Validate(ErrShipDateIsNotConstructed)
}

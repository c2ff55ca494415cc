package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or Zero.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or Zero constructors")

// Money represents a non-negative monetary amount in minor currency units
// (e.g. cents). It is an immutable value object; arithmetic produces new
// instances and never mutates the receiver.
//
// Example:
//
//	base, _ := kernel.NewMoney(2500)
//	extra, _ := kernel.NewMoney(300)
//	unit := base.Add(extra)
//	total := unit.MultiplyBy(2) // 5600
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
// Negative amounts are rejected: the workflow never deals in refunds or
// credits, only in configuration prices and totals.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Zero returns a properly constructed zero amount.
func Zero() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount + other.amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// MultiplyBy returns the amount multiplied by a non-negative factor.
// Callers validate the factor (order quantity) before reaching this point.
func (m Money) MultiplyBy(factor int) Money {
	return Money{
		amount: m.amount * int64(factor),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount as a decimal with two fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}

// Validate returns ErrMoneyIsNotConstructed for the zero-value struct.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

package kernel

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromString, or ZeroMoney")

// Money is a non-negative decimal amount. It backs food item prices, cart
// line costs, and order totals, and keeps arithmetic exact (no float
// rounding) so a computed total always equals Σ(price × quantity).
//
// Money is immutable; arithmetic returns new values. The zero value is
// invalid: use ZeroMoney for an explicit zero amount.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("250.00")
//	if err != nil {
//	    // handle invalid amount
//	}
//	cost, _ := price.MulInt(2)
//	fmt.Println(cost) // "500.00"
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected with a ValueIsInvalid error.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New(amount.String()+" is negative"))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromString parses a decimal string such as "250" or "99.50".
// Returns a ValueIsInvalid error for unparsable or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used for line costs (price × quantity).
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidError("factor must not be negative")
	}
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal
// (scale differences are ignored, so 5 equals 5.00).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "250.00".
// It implements fmt.Stringer; currency symbols are a presentation concern
// and stay out of the domain.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was created via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

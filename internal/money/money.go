// Package money holds currency arithmetic and presentation helpers.
// Amounts are int64 whole currency units (rubles); there are no fractions.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is appended to formatted amounts.
const Symbol = "₽"

var printer = message.NewPrinter(language.Russian)

// Format renders amount with ru-RU digit grouping and no fraction digits,
// e.g. 1234567 -> "1 234 567 ₽".
func Format(amount int64) string {
	return printer.Sprintf("%d", amount) + " " + Symbol
}

// FeePolicy is a clamped percentage fee: clamp(amount × Rate, Min, Max).
// A zero Max disables the upper bound.
type FeePolicy struct {
	Rate decimal.Decimal
	Min  int64
	Max  int64
}

// Fee returns the fee charged on amount. The percentage part is rounded up
// to the next whole unit before clamping.
func (p FeePolicy) Fee(amount int64) int64 {
	fee := decimal.NewFromInt(amount).Mul(p.Rate).Ceil().IntPart()
	if fee < p.Min {
		fee = p.Min
	}
	if p.Max > 0 && fee > p.Max {
		fee = p.Max
	}
	return fee
}

// Scale multiplies amount by factor and rounds half away from zero.
func Scale(amount int64, factor float64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(factor)).Round(0).IntPart()
}

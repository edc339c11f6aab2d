package services

import (
	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/shopspring/decimal"
)

// LoanQuote is an annuity repayment plan rounded to whole units.
type LoanQuote struct {
	Principal   int64
	Months      int
	AnnualRate  decimal.Decimal
	Monthly     int64
	Total       int64
	Overpayment int64
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// CalculateLoan computes the fixed monthly payment for borrowing principal
// over months at annualRate percent per year:
//
//	monthly = P·r·(1+r)^n / ((1+r)^n − 1), r = annualRate/100/12
//
// A zero rate splits the principal evenly.
func CalculateLoan(principal int64, months int, annualRate decimal.Decimal) (*LoanQuote, error) {
	if principal <= 0 || months <= 0 || annualRate.IsNegative() {
		return nil, common.ErrInvalidLoanTerms
	}

	p := decimal.NewFromInt(principal)
	n := decimal.NewFromInt(int64(months))

	var monthly decimal.Decimal
	if annualRate.IsZero() {
		monthly = p.Div(n)
	} else {
		r := annualRate.Div(hundred).Div(twelve)
		growth := decimal.NewFromInt(1).Add(r).Pow(n)
		monthly = p.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	}
	total := monthly.Mul(n)

	return &LoanQuote{
		Principal:   principal,
		Months:      months,
		AnnualRate:  annualRate,
		Monthly:     monthly.Round(0).IntPart(),
		Total:       total.Round(0).IntPart(),
		Overpayment: total.Sub(p).Round(0).IntPart(),
	}, nil
}

// Package valuation implements the two calculators: total land value and net
// annual property tax. Both take raw string inputs and return display-ready
// text, so every caller (menu, subcommand, test) sees identical output.
package valuation

import (
	"fmt"

	"estatehub/internal/money"
	"estatehub/internal/types"
)

// LandValue multiplies plot area by price per unit area and renders the
// total as a currency line. Both inputs must parse as decimals and be
// strictly positive.
func LandValue(area, pricePerUnit string) (string, error) {
	areaDec, errA := money.Parse(area)
	priceDec, errP := money.Parse(pricePerUnit)
	if errA != nil || errP != nil {
		return "", types.NewError(types.InvalidNumber, "please enter valid numerical inputs")
	}
	if !areaDec.IsPositive() || !priceDec.IsPositive() {
		return "", types.NewError(types.NonPositiveInput, "area and price must be positive numbers")
	}

	total := areaDec.Mul(priceDec)
	return fmt.Sprintf("Total Land Value: %s", money.Format(total)), nil
}

// PropertyTax computes gross tax from the annual value and rate, subtracts
// the rebate, and reports all three figures. Zero is legal for every input;
// negatives are not.
func PropertyTax(annualValue, taxRatePercent, rebatePercent string) (string, error) {
	annual, errA := money.Parse(annualValue)
	rate, errR := money.Parse(taxRatePercent)
	rebate, errB := money.Parse(rebatePercent)
	if errA != nil || errR != nil || errB != nil {
		return "", types.NewError(types.InvalidNumber, "please enter valid numerical inputs")
	}
	if annual.IsNegative() || rate.IsNegative() || rebate.IsNegative() {
		return "", types.NewError(types.NegativeInput, "values cannot be negative")
	}

	// Shift(-2) is an exact divide-by-100; Div would go through division
	// precision.
	grossTax := annual.Mul(rate).Shift(-2)
	rebateAmount := grossTax.Mul(rebate).Shift(-2)
	netTax := money.RoundHalfUp(grossTax.Sub(rebateAmount))

	return fmt.Sprintf("Gross Annual Tax: %s\nRebate Applied (%s%%): %s\nNet Payable Tax: %s",
		money.Format(grossTax), rebate.String(), money.Format(rebateAmount), money.Format(netTax)), nil
}

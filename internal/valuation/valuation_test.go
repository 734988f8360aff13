package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/types"
)

func TestLandValue(t *testing.T) {
	got, err := LandValue("1200", "550")
	require.NoError(t, err)
	assert.Equal(t, "Total Land Value: ₹660,000.00", got)
}

func TestLandValueDecimalInputs(t *testing.T) {
	// 120.5 × 999.99 = 120498.795, which rounds half-up to 120498.80.
	got, err := LandValue("120.5", "999.99")
	require.NoError(t, err)
	assert.Equal(t, "Total Land Value: ₹120,498.80", got)
}

func TestLandValueRejectsNonPositive(t *testing.T) {
	for _, args := range [][2]string{{"0", "5"}, {"5", "0"}, {"-1", "5"}, {"5", "-0.01"}} {
		_, err := LandValue(args[0], args[1])
		require.Error(t, err, "args %v", args)
		assert.Equal(t, types.NonPositiveInput, types.KindOf(err), "args %v", args)
	}
}

func TestLandValueRejectsNonNumeric(t *testing.T) {
	for _, args := range [][2]string{{"abc", "5"}, {"5", ""}, {"1,200", "550"}} {
		_, err := LandValue(args[0], args[1])
		require.Error(t, err, "args %v", args)
		assert.Equal(t, types.InvalidNumber, types.KindOf(err), "args %v", args)
	}
}

func TestPropertyTax(t *testing.T) {
	got, err := PropertyTax("100000", "12", "10")
	require.NoError(t, err)
	want := "Gross Annual Tax: ₹12,000.00\n" +
		"Rebate Applied (10%): ₹1,200.00\n" +
		"Net Payable Tax: ₹10,800.00"
	assert.Equal(t, want, got)
}

func TestPropertyTaxZeroInputs(t *testing.T) {
	got, err := PropertyTax("0", "0", "0")
	require.NoError(t, err)
	want := "Gross Annual Tax: ₹0.00\n" +
		"Rebate Applied (0%): ₹0.00\n" +
		"Net Payable Tax: ₹0.00"
	assert.Equal(t, want, got)
}

func TestPropertyTaxFractionalRebateEcho(t *testing.T) {
	got, err := PropertyTax("250000", "8.25", "7.5")
	require.NoError(t, err)
	// 250000 × 8.25% = 20625; 20625 × 7.5% = 1546.875 → 1,546.88 displayed;
	// net 19078.125 → 19,078.13. The echoed rebate keeps the entered scale.
	want := "Gross Annual Tax: ₹20,625.00\n" +
		"Rebate Applied (7.5%): ₹1,546.88\n" +
		"Net Payable Tax: ₹19,078.13"
	assert.Equal(t, want, got)
}

func TestPropertyTaxExactHundredths(t *testing.T) {
	// 0.1 × 0.1% cannot be represented in binary floats; exact decimals give
	// precisely 0.0001, displayed as 0.00.
	got, err := PropertyTax("0.1", "0.1", "0")
	require.NoError(t, err)
	want := "Gross Annual Tax: ₹0.00\n" +
		"Rebate Applied (0%): ₹0.00\n" +
		"Net Payable Tax: ₹0.00"
	assert.Equal(t, want, got)
}

func TestPropertyTaxRejectsNegative(t *testing.T) {
	for _, args := range [][3]string{
		{"-1", "5", "0"},
		{"100", "-5", "0"},
		{"100", "5", "-1"},
	} {
		_, err := PropertyTax(args[0], args[1], args[2])
		require.Error(t, err, "args %v", args)
		assert.Equal(t, types.NegativeInput, types.KindOf(err), "args %v", args)
	}
}

func TestPropertyTaxRejectsNonNumeric(t *testing.T) {
	_, err := PropertyTax("100", "abc", "0")
	require.Error(t, err)
	assert.Equal(t, types.InvalidNumber, types.KindOf(err))
}

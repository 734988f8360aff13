package agreement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/types"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	}
}

func validInputs() types.AgreementInputs {
	return types.AgreementInputs{
		TenantName:      "Asha Verma",
		LandlordName:    "Ravi Kumar",
		PropertyAddress: "42 Lakeview Road, Pune",
		RentAmount:      "15000",
		DepositAmount:   "45000",
		StartDate:       "2024-04-01",
		TermMonths:      "11",
	}
}

const goldenAgreement = `RENTAL AGREEMENT

This Rental Agreement (hereinafter "Agreement") is made and entered into on this March 10, 2024, by and between:

1. LANDLORD: Ravi Kumar
2. TENANT: Asha Verma

PROPERTY DETAILS:
The property is located at:
42 Lakeview Road, Pune

TERM:
The term of this Agreement shall be for 11 months, commencing on April 01, 2024 and approximately ending on March 01, 2025.

RENT:
The monthly rent shall be ₹15,000.00, payable in advance on the first day of each calendar month.

SECURITY DEPOSIT:
The Tenant shall pay the Landlord a Security Deposit of ₹45,000.00 upon signing this Agreement.

TERMINATION:
Either party may terminate this agreement by providing a written notice of one calendar month.

IN WITNESS WHEREOF, the parties have executed this Agreement:

_________________________                 _________________________
LANDLORD SIGNATURE                      TENANT SIGNATURE
(Name: Ravi Kumar)                        (Name: Asha Verma)`

func TestGenerateGolden(t *testing.T) {
	got, err := NewWithClock(fixedClock()).Generate(validInputs())
	require.NoError(t, err)
	require.Equal(t, goldenAgreement, got)
}

func TestGenerateTermWording(t *testing.T) {
	in := validInputs()
	in.TermMonths = "1"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "shall be for one month, commencing on April 01, 2024 and approximately ending on May 01, 2024.")

	in.TermMonths = "2"
	got, err = NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "shall be for 2 months, commencing on April 01, 2024 and approximately ending on June 01, 2024.")
}

func TestGenerateEndDateWrapsYear(t *testing.T) {
	in := validInputs()
	in.StartDate = "2024-01-15"
	in.TermMonths = "13"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "approximately ending on February 15, 2025.")

	in.StartDate = "2023-12-10"
	in.TermMonths = "14"
	got, err = NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "approximately ending on February 10, 2025.")
}

func TestGenerateEndDateDecemberPlusTwelve(t *testing.T) {
	in := validInputs()
	in.StartDate = "2024-12-10"
	in.TermMonths = "12"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "approximately ending on December 10, 2025.")
}

func TestGenerateEndDateSameYearBoundary(t *testing.T) {
	in := validInputs()
	in.StartDate = "2024-06-15"
	in.TermMonths = "6"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "approximately ending on December 15, 2024.")
}

func TestGenerateLeapDayEnd(t *testing.T) {
	in := validInputs()
	in.StartDate = "2024-01-29"
	in.TermMonths = "1"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "approximately ending on February 29, 2024.")
}

func TestGenerateRejectsDayMissingFromEndingMonth(t *testing.T) {
	cases := []struct {
		start string
		term  string
	}{
		{"2024-01-31", "1"}, // February 2024 has 29 days
		{"2024-03-31", "1"}, // April has 30
		{"2023-01-29", "1"}, // February 2023 has 28
	}
	for _, tc := range cases {
		in := validInputs()
		in.StartDate = tc.start
		in.TermMonths = tc.term
		_, err := NewWithClock(fixedClock()).Generate(in)
		require.Error(t, err, "start %s term %s", tc.start, tc.term)
		assert.Equal(t, types.InvalidDate, types.KindOf(err), "start %s term %s", tc.start, tc.term)
	}
}

func TestGenerateMissingFieldCheckedFirst(t *testing.T) {
	in := validInputs()
	in.TenantName = "   "
	in.RentAmount = "not-a-number" // must not be reached
	_, err := NewWithClock(fixedClock()).Generate(in)
	require.Error(t, err)
	assert.Equal(t, types.MissingField, types.KindOf(err))
}

func TestGenerateValidationKinds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.AgreementInputs)
		want   types.Kind
	}{
		{"rent not numeric", func(in *types.AgreementInputs) { in.RentAmount = "abc" }, types.InvalidNumber},
		{"deposit not numeric", func(in *types.AgreementInputs) { in.DepositAmount = "4,500" }, types.InvalidNumber},
		{"term fractional", func(in *types.AgreementInputs) { in.TermMonths = "2.5" }, types.InvalidInteger},
		{"rent zero", func(in *types.AgreementInputs) { in.RentAmount = "0" }, types.InvalidRange},
		{"deposit negative", func(in *types.AgreementInputs) { in.DepositAmount = "-1" }, types.InvalidRange},
		{"term zero", func(in *types.AgreementInputs) { in.TermMonths = "0" }, types.InvalidRange},
		{"term negative", func(in *types.AgreementInputs) { in.TermMonths = "-3" }, types.InvalidRange},
		{"date wrong order", func(in *types.AgreementInputs) { in.StartDate = "01-04-2024" }, types.InvalidDate},
		{"date not padded", func(in *types.AgreementInputs) { in.StartDate = "2024-4-1" }, types.InvalidDate},
		{"date nonsense", func(in *types.AgreementInputs) { in.StartDate = "soon" }, types.InvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInputs()
			tc.mutate(&in)
			_, err := NewWithClock(fixedClock()).Generate(in)
			require.Error(t, err)
			assert.Equal(t, tc.want, types.KindOf(err))
		})
	}
}

func TestGenerateZeroDepositAllowed(t *testing.T) {
	in := validInputs()
	in.DepositAmount = "0"
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Contains(t, got, "Security Deposit of ₹0.00 upon signing")
}

func TestGenerateTrimsInputs(t *testing.T) {
	in := validInputs()
	in.TenantName = "  Asha Verma  "
	in.RentAmount = " 15000 "
	got, err := NewWithClock(fixedClock()).Generate(in)
	require.NoError(t, err)
	assert.Equal(t, goldenAgreement, got)
}

// Package agreement renders rental-agreement documents from a fixed
// template. The output layout is a compatibility surface: downstream users
// diff generated agreements, so the template bytes and the end-date rule
// must not drift.
package agreement

import (
	"fmt"
	"strings"
	"time"

	"estatehub/internal/money"
	"estatehub/internal/types"
)

// template takes, in order: agreement date, landlord, tenant, address, term
// phrase, start date, end date, rent, deposit, landlord, tenant.
const template = `RENTAL AGREEMENT

This Rental Agreement (hereinafter "Agreement") is made and entered into on this %s, by and between:

1. LANDLORD: %s
2. TENANT: %s

PROPERTY DETAILS:
The property is located at:
%s

TERM:
The term of this Agreement shall be for %s, commencing on %s and approximately ending on %s.

RENT:
The monthly rent shall be %s, payable in advance on the first day of each calendar month.

SECURITY DEPOSIT:
The Tenant shall pay the Landlord a Security Deposit of %s upon signing this Agreement.

TERMINATION:
Either party may terminate this agreement by providing a written notice of one calendar month.

IN WITNESS WHEREOF, the parties have executed this Agreement:

_________________________                 _________________________
LANDLORD SIGNATURE                      TENANT SIGNATURE
(Name: %s)                        (Name: %s)`

// dateLayout is the required start-date input format.
const dateLayout = "2006-01-02"

// displayLayout spells dates out the way the document does, with the day
// always two digits.
const displayLayout = "January 02, 2006"

// Generator produces agreement documents. The clock only stamps the
// "entered into on" line; term arithmetic never consults it.
type Generator struct {
	now func() time.Time
}

// New returns a Generator stamping documents with the system clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator using the supplied clock, for
// deterministic output.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate validates the inputs and renders the agreement document.
// Validation runs in a fixed order: presence of all fields, then numeric
// and integer parsing, then ranges, then dates.
func (g *Generator) Generate(in types.AgreementInputs) (string, error) {
	tenant := strings.TrimSpace(in.TenantName)
	landlord := strings.TrimSpace(in.LandlordName)
	address := strings.TrimSpace(in.PropertyAddress)
	rentRaw := strings.TrimSpace(in.RentAmount)
	depositRaw := strings.TrimSpace(in.DepositAmount)
	startRaw := strings.TrimSpace(in.StartDate)
	termRaw := strings.TrimSpace(in.TermMonths)

	if tenant == "" || landlord == "" || address == "" || rentRaw == "" ||
		depositRaw == "" || startRaw == "" || termRaw == "" {
		return "", types.NewError(types.MissingField, "all fields must be filled for agreement generation")
	}

	rent, err := money.Parse(rentRaw)
	if err != nil {
		return "", types.NewError(types.InvalidNumber, "rent and deposit must be valid numbers")
	}
	deposit, err := money.Parse(depositRaw)
	if err != nil {
		return "", types.NewError(types.InvalidNumber, "rent and deposit must be valid numbers")
	}
	term, err := money.ParseInt(termRaw)
	if err != nil {
		return "", types.NewError(types.InvalidInteger, "term must be a whole number of months")
	}
	if !rent.IsPositive() || deposit.IsNegative() || term <= 0 {
		return "", types.NewError(types.InvalidRange, "financial values and term must be positive")
	}

	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return "", types.NewError(types.InvalidDate, "start date must match YYYY-MM-DD")
	}
	end, err := endDate(start, term)
	if err != nil {
		return "", err
	}

	termPhrase := fmt.Sprintf("%d months", term)
	if term == 1 {
		termPhrase = "one month"
	}

	return fmt.Sprintf(template,
		g.now().Format(displayLayout),
		landlord,
		tenant,
		address,
		termPhrase,
		start.Format(displayLayout),
		end.Format(displayLayout),
		money.Format(rent),
		money.Format(deposit),
		landlord,
		tenant,
	), nil
}

// endDate advances start by term calendar months, keeping the day of month.
// The month wraps through December into a year increment. A start day that
// does not exist in the target month (January 31 plus one month, say) is
// rejected rather than rolled into the following month.
func endDate(start time.Time, term int) (time.Time, error) {
	total := int(start.Month()) + term
	month := total % 12
	if month == 0 {
		month = 12
	}
	year := start.Year() + (total-1)/12

	if start.Day() > daysIn(year, time.Month(month)) {
		return time.Time{}, types.NewError(types.InvalidDate,
			fmt.Sprintf("day %d does not exist in the ending month", start.Day()))
	}
	return time.Date(year, time.Month(month), start.Day(), 0, 0, 0, 0, time.UTC), nil
}

// daysIn returns the length of a month: day zero of the following month
// normalizes back to its last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

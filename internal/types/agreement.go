package types

// AgreementInputs carries the raw form fields for one rental agreement.
// Values stay strings exactly as collected; the agreement package does all
// validation and conversion.
type AgreementInputs struct {
	TenantName      string
	LandlordName    string
	PropertyAddress string
	RentAmount      string
	DepositAmount   string
	StartDate       string
	TermMonths      string
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"estatehub/internal/agreement"
	"estatehub/internal/types"
)

var agreementFlags struct {
	tenant   string
	landlord string
	address  string
	rent     string
	deposit  string
	start    string
	months   string
	out      string
}

var agreementCmd = &cobra.Command{
	Use:   "agreement",
	Short: "Generate rental-agreement text",
	Long: `Generates a rental agreement from the seven required fields and prints
it, or writes it to a file with --out. The start date must be YYYY-MM-DD;
the end date keeps the same day of month, so a start day missing from the
ending month is rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := agreement.New().Generate(types.AgreementInputs{
			TenantName:      agreementFlags.tenant,
			LandlordName:    agreementFlags.landlord,
			PropertyAddress: agreementFlags.address,
			RentAmount:      agreementFlags.rent,
			DepositAmount:   agreementFlags.deposit,
			StartDate:       agreementFlags.start,
			TermMonths:      agreementFlags.months,
		})
		if err != nil {
			return err
		}
		if agreementFlags.out != "" {
			if err := os.WriteFile(agreementFlags.out, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write agreement: %w", err)
			}
			fmt.Printf("Agreement written to %s\n", agreementFlags.out)
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	f := agreementCmd.Flags()
	f.StringVar(&agreementFlags.tenant, "tenant", "", "tenant name")
	f.StringVar(&agreementFlags.landlord, "landlord", "", "landlord name")
	f.StringVar(&agreementFlags.address, "address", "", "property address")
	f.StringVar(&agreementFlags.rent, "rent", "", "monthly rent")
	f.StringVar(&agreementFlags.deposit, "deposit", "", "security deposit")
	f.StringVar(&agreementFlags.start, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&agreementFlags.months, "months", "", "term in months")
	f.StringVar(&agreementFlags.out, "out", "", "write the agreement to this file instead of stdout")
}

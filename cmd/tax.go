package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"estatehub/internal/valuation"
)

var (
	taxRate   string
	taxRebate string
)

var taxCmd = &cobra.Command{
	Use:   "tax <annual-value>",
	Short: "Compute net annual property tax",
	Long: `Computes gross tax from the annual property value and tax rate, applies
the rebate percentage, and prints gross, rebate, and net figures. Zero is
allowed for every value; negatives are not.

Rate and rebate default to ESTATEHUB_TAX_RATE and ESTATEHUB_REBATE.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate := taxRate
		if rate == "" {
			rate = cfg.DefaultTaxRate
		}
		rebate := taxRebate
		if rebate == "" {
			rebate = cfg.DefaultRebate
		}
		result, err := valuation.PropertyTax(args[0], rate, rebate)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	taxCmd.Flags().StringVar(&taxRate, "rate", "", "tax rate percent")
	taxCmd.Flags().StringVar(&taxRebate, "rebate", "", "rebate percent")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"estatehub/internal/valuation"
)

var valueCmd = &cobra.Command{
	Use:   "value <area> <price-per-unit>",
	Short: "Compute total land value",
	Long: `Computes area × price-per-unit with exact decimal arithmetic and prints
the total with the ₹ symbol, thousands separators, and two decimal places.
Both arguments must be strictly positive numbers.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := valuation.LandValue(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

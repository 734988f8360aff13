package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"estatehub/internal/types"
)

var brokersCmd = &cobra.Command{
	Use:   "brokers",
	Short: "Manage the saved broker registry",
	Long:  `Lists, adds, and deletes broker contacts kept in a local JSON file.`,
}

var brokersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved brokers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBrokers(store.All())
		return nil
	},
}

var brokersAddCmd = &cobra.Command{
	Use:   "add <name> <contact>",
	Short: "Save a new broker contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := store.Add(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Broker '%s' saved successfully.\n", rec.Name)
		return nil
	},
}

var brokersDeleteCmd = &cobra.Command{
	Use:   "delete [position]",
	Short: "Delete a broker by list position",
	Long: `Deletes the broker at the given 1-based list position, as shown by
'brokers list'. With no position, opens an interactive picker: ↑/↓ to move,
Enter to delete, Esc to cancel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return types.NewError(types.InvalidSelection, "please select a valid broker to delete")
			}
			return deleteBrokerAt(pos - 1)
		}

		idx, ok := pickBroker(store.All())
		if !ok {
			fmt.Println("Deletion cancelled.")
			return nil
		}
		return deleteBrokerAt(idx)
	},
}

func init() {
	brokersCmd.AddCommand(brokersListCmd, brokersAddCmd, brokersDeleteCmd)
}

// printBrokers writes the numbered registry listing, one record per line.
func printBrokers(brokers []types.BrokerRecord) {
	if len(brokers) == 0 {
		fmt.Println("No brokers saved yet.")
		return
	}
	for i, b := range brokers {
		fmt.Println(b.DisplayLine(i + 1))
	}
}

// deleteBrokerAt removes the record at the 0-based index and reports it.
func deleteBrokerAt(index int) error {
	rec, err := store.Delete(index)
	if err != nil {
		return err
	}
	fmt.Printf("Broker '%s' deleted.\n", rec.Name)
	return nil
}

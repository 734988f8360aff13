package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"estatehub/internal/agreement"
	"estatehub/internal/types"
	"estatehub/internal/valuation"
)

// runHub is the interactive loop for multiple operations in one session.
// Each round collects raw inputs, hands them to the matching tool, and
// prints either the result or the validation message.
func runHub() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nestatehub tools:\n" +
			"  1) Land value\n" +
			"  2) Property tax\n" +
			"  3) Rental agreement\n" +
			"  4) Broker registry\n" +
			"Choice (blank to quit): ")
		choice, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		switch strings.TrimSpace(choice) {
		case "":
			return
		case "1":
			hubLandValue(reader)
		case "2":
			hubPropertyTax(reader)
		case "3":
			hubAgreement(reader)
		case "4":
			hubBrokers(reader)
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

// prompt prints a label and reads one trimmed line.
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// promptDefault reads one line, falling back to def when it is blank.
func promptDefault(reader *bufio.Reader, label, def string) string {
	if v := prompt(reader, label); v != "" {
		return v
	}
	return def
}

// render prints a tool result, or its validation message on failure.
func render(result string, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(result)
}

func hubLandValue(reader *bufio.Reader) {
	area := prompt(reader, "Area (sq. units): ")
	price := prompt(reader, "Price per sq. unit (₹): ")
	render(valuation.LandValue(area, price))
}

func hubPropertyTax(reader *bufio.Reader) {
	annual := prompt(reader, "Annual property value (₹): ")
	rate := promptDefault(reader, fmt.Sprintf("Tax rate %% [%s]: ", cfg.DefaultTaxRate), cfg.DefaultTaxRate)
	rebate := promptDefault(reader, fmt.Sprintf("Rebate %% [%s]: ", cfg.DefaultRebate), cfg.DefaultRebate)
	render(valuation.PropertyTax(annual, rate, rebate))
}

func hubAgreement(reader *bufio.Reader) {
	in := types.AgreementInputs{
		TenantName:      prompt(reader, "Tenant name: "),
		LandlordName:    prompt(reader, "Landlord name: "),
		PropertyAddress: prompt(reader, "Property address: "),
		RentAmount:      prompt(reader, "Monthly rent (₹): "),
		DepositAmount:   prompt(reader, "Security deposit (₹): "),
		StartDate:       prompt(reader, "Start date (YYYY-MM-DD): "),
		TermMonths:      prompt(reader, "Term (months): "),
	}
	render(agreement.New().Generate(in))
}

func hubBrokers(reader *bufio.Reader) {
	for {
		fmt.Printf("\nBroker registry — data is saved locally in '%s'.\n", store.Path())
		printBrokers(store.All())
		choice := prompt(reader, "  1) Add broker\n  2) Delete broker\nChoice (blank to go back): ")
		switch choice {
		case "":
			return
		case "1":
			name := prompt(reader, "Name: ")
			contact := prompt(reader, "Contact: ")
			rec, err := store.Add(name, contact)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Broker '%s' saved successfully.\n", rec.Name)
		case "2":
			idx, ok := pickBroker(store.All())
			if !ok {
				continue
			}
			if err := deleteBrokerAt(idx); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

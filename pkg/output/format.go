// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyResult outputs a single calculated amount in human-readable form.
func PrettyResult(operation string, amount float64) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Results for %s ---\n", operation)
	_, _ = p.Printf("Amount: $%.2f\n", amount)
}

// CsvResult outputs a single calculated amount in comma-separated value format.
func CsvResult(operation string, amount float64) {
	fmt.Printf(`"operation","amount"` + "\n")
	fmt.Printf(`"%s","%.2f"`+"\n", operation, amount)
}

// PrettyFormat outputs a human-readable rather than machine-readable
// amortization table. Schedules longer than thirteen lines are elided down to
// the first twelve lines and the final line.
func PrettyFormat(monthlyPayment float64, schedule []loans.Line) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Amortization schedule ---\n")
	_, _ = p.Printf("Monthly payment: $%.2f\n", monthlyPayment)
	fmt.Printf("Payment | Interest | Principal | Remaining Balance\n")
	fmt.Printf("_______ | ________ | _________ | _________________\n")
	if len(schedule) > constants.ScheduleHeadLines+1 {
		for _, line := range schedule[:constants.ScheduleHeadLines] {
			printLine(p, line)
		}
		fmt.Printf("    ...\n")
		printLine(p, schedule[len(schedule)-1])
	} else {
		for _, line := range schedule {
			printLine(p, line)
		}
	}
}

func printLine(p *message.Printer, line loans.Line) {
	fmt.Printf("%7d | ", line.PaymentNumber)
	_, _ = p.Printf("$%.2f | $%.2f | $%.2f\n", line.Interest, line.Principal, line.RemainingBalance)
}

// CsvFormat outputs the full schedule in comma-separated value format.
func CsvFormat(schedule []loans.Line) {
	fmt.Print(CsvString(schedule))
}

// CsvString returns the full schedule in comma-separated value format. Every
// line is included regardless of schedule length.
func CsvString(schedule []loans.Line) string {
	var b strings.Builder
	b.WriteString(`"paymentNumber","interest","principal","remainingBalance"` + "\n")
	for _, line := range schedule {
		b.WriteString(fmt.Sprintf(`"%d","%.2f","%.2f","%.2f"`+"\n",
			line.PaymentNumber, line.Interest, line.Principal, line.RemainingBalance))
	}
	return b.String()
}

package model

import "github.com/shopspring/decimal"

const (
	RegisterOpeningBalance = "Opening Balance"
	RegisterInterest       = "Interest"
	RegisterClosingBalance = "Closing Balance"
)

// RegisterEntry is one labelled line of a month-end settlement.
type RegisterEntry struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// SumRegister adds up the amounts of every entry carrying label.
func SumRegister(entries []RegisterEntry, label string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Label == label {
			total = total.Add(e.Amount)
		}
	}
	return total
}

package model

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Scenario is one replayable test case: an opening balance, the withdrawals
// and deposits to apply in that order, the interest rate, whether month-end
// runs, and the balance expected at the end.
type Scenario struct {
	Line           int               `json:"line,omitempty"`
	InitialBalance decimal.Decimal   `json:"initial_balance"`
	Withdrawals    []decimal.Decimal `json:"withdrawals"`
	Deposits       []decimal.Decimal `json:"deposits"`
	InterestRate   decimal.Decimal   `json:"interest_rate"`
	RunMonthEnd    bool              `json:"run_month_end"`
	EndBalance     decimal.Decimal   `json:"end_balance"`
}

func (s *Scenario) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.InterestRate, validation.By(func(value interface{}) error {
			rate, ok := value.(decimal.Decimal)
			if !ok {
				return errors.New("invalid type for interest rate")
			}
			if rate.IsNegative() {
				return errors.New("must not be negative")
			}
			return nil
		})),
	)
}

// String renders the scenario in its line format.
func (s Scenario) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%t",
		s.InitialBalance, joinAmounts(s.Withdrawals), joinAmounts(s.Deposits),
		s.InterestRate, s.EndBalance, s.RunMonthEnd)
}

func joinAmounts(amounts []decimal.Decimal) string {
	parts := make([]string, len(amounts))
	for i, a := range amounts {
		parts[i] = a.String()
	}
	return strings.Join(parts, "|")
}

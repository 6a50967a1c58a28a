/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is a single savings account. It tracks a running balance, credits
// interest at month-end and keeps the register of the latest settlement.
//
// An Account is not safe for concurrent use.
type Account struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Owner     *Owner `json:"owner"`

	balance      decimal.Decimal
	interestRate decimal.Decimal
	policy       WithdrawalPolicy
	register     []RegisterEntry
}

// AccountOption configures an Account at construction.
type AccountOption func(*Account)

// WithWithdrawalPolicy overrides the default PolicyPermissive.
func WithWithdrawalPolicy(p WithdrawalPolicy) AccountOption {
	return func(a *Account) {
		a.policy = p
	}
}

// NewAccount opens an account. The initial balance may be negative to model a
// pre-overdrawn account; no validation is performed on any argument.
func NewAccount(name string, initialBalance, interestRate decimal.Decimal, owner *Owner, opts ...AccountOption) *Account {
	a := &Account{
		AccountID:    GenerateUUIDWithSuffix("acc"),
		Name:         name,
		Owner:        owner,
		balance:      initialBalance,
		interestRate: interestRate,
		policy:       PolicyPermissive,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Balance returns the current balance. It has no side effects.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// InterestRate returns the rate applied at each MonthEnd, e.g. 0.01 for 1%.
func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// Policy returns the withdrawal policy fixed at construction.
func (a *Account) Policy() WithdrawalPolicy {
	return a.policy
}

// Deposit credits amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("deposit %s: %w", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits amount from the balance. With PolicyPermissive the balance
// may go negative; with PolicyRejectOverdraft a withdrawal larger than the
// balance fails with ErrInsufficientFunds. A failed withdrawal leaves the
// balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("withdraw %s: %w", amount, ErrInvalidAmount)
	}
	if a.policy == PolicyRejectOverdraft && amount.GreaterThan(a.balance) {
		return fmt.Errorf("withdraw %s from balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// MonthEnd credits balance*rate as interest and replaces the register with
// the settlement's entries. Every call compounds on the current balance.
// It returns the interest credited.
func (a *Account) MonthEnd() decimal.Decimal {
	opening := a.balance
	interest := opening.Mul(a.interestRate)
	closing := opening.Add(interest)

	register := []RegisterEntry{
		{Label: RegisterOpeningBalance, Amount: opening},
		{Label: RegisterInterest, Amount: interest},
		{Label: RegisterClosingBalance, Amount: closing},
	}

	a.balance = closing
	a.register = register
	return interest
}

// RegisterEntries returns a copy of the register produced by the most recent
// MonthEnd, or nil if none has run.
func (a *Account) RegisterEntries() []RegisterEntry {
	if a.register == nil {
		return nil
	}
	out := make([]RegisterEntry, len(a.register))
	copy(out, a.register)
	return out
}

func (a *Account) String() string {
	return fmt.Sprintf("%s[%s] balance=%s rate=%s", a.Name, a.AccountID, a.balance, a.interestRate)
}

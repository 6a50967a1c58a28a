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

package savings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/wacul/ptr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jerry-enebeli/savings/internal/runerror"
	"github.com/jerry-enebeli/savings/model"
)

var (
	scenarioTracer = otel.Tracer("savings.scenarios")
)

type ScenarioResult struct {
	Index    int                   `json:"index"`
	Scenario model.Scenario        `json:"scenario"`
	Balance  decimal.Decimal       `json:"balance"`
	Register []model.RegisterEntry `json:"register,omitempty"`
	Passed   bool                  `json:"passed"`
	Err      error                 `json:"-"`
}

type Report struct {
	Results     []ScenarioResult `json:"results"`
	Run         int              `json:"run"`
	Passed      int              `json:"passed"`
	Failed      int              `json:"failed"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// Failures returns the results that did not pass, in run order.
func (r Report) Failures() []ScenarioResult {
	var out []ScenarioResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Err summarises the run as a single error, or nil if every scenario passed.
// The code is the first failure's code.
func (r Report) Err() error {
	failures := r.Failures()
	if len(failures) == 0 {
		return nil
	}
	return runerror.Wrap(runerror.CodeOf(failures[0].Err),
		fmt.Errorf("%d of %d scenarios failed: %w", r.Failed, r.Run, failures[0].Err), nil)
}

func (r Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tests run: %d Passed: %d Failed: %d\n", r.Run, r.Passed, r.Failed)
	failures := r.Failures()
	if len(failures) > 0 {
		sb.WriteString("Failures:\n")
		for _, f := range failures {
			fmt.Fprintf(&sb, "\tTest #%d (%s): %v\n", f.Index, f.Scenario, f.Err)
		}
	}
	return sb.String()
}

// RunScenario opens an account for s, replays withdrawals then deposits,
// settles month-end if asked and checks the final balance. A rejected
// transaction aborts only this scenario.
func (r *Runner) RunScenario(ctx context.Context, index int, s model.Scenario) ScenarioResult {
	_, span := scenarioTracer.Start(ctx, "RunScenario")
	defer span.End()
	span.SetAttributes(attribute.Int("scenario.index", index), attribute.Int("scenario.line", s.Line))

	logrus.Infof("**** Running test for %s", s)
	result := ScenarioResult{Index: index, Scenario: s}

	owner := r.ownerFor(index)
	if err := owner.Validate(); err != nil {
		err = runerror.Wrap(runerror.CodeInternal, fmt.Errorf("invalid owner for test %d: %w", index, err), nil)
		span.RecordError(err)
		logrus.WithField("test", index).Warn(err)
		result.Balance = s.InitialBalance
		result.Err = err
		return result
	}

	account := model.NewAccount(
		fmt.Sprintf("test %d", index),
		s.InitialBalance,
		s.InterestRate,
		owner,
		model.WithWithdrawalPolicy(r.policy),
	)

	fail := func(err error) ScenarioResult {
		span.RecordError(err)
		result.Balance = account.Balance()
		result.Err = err
		logrus.WithFields(logrus.Fields{"test": index, "account": account.AccountID}).Warn(err)
		return result
	}

	for _, amount := range s.Withdrawals {
		if err := account.Withdraw(amount); err != nil {
			return fail(runerror.Wrap(runerror.CodeTransactionRejected, err, amount.String()))
		}
	}
	for _, amount := range s.Deposits {
		if err := account.Deposit(amount); err != nil {
			return fail(runerror.Wrap(runerror.CodeTransactionRejected, err, amount.String()))
		}
	}

	if s.RunMonthEnd || r.forceMonthEnd {
		interest := account.MonthEnd()
		span.AddEvent("Month end settled", trace.WithAttributes(attribute.String("interest", interest.String())))
		result.Register = account.RegisterEntries()
		for _, entry := range result.Register {
			logrus.Infof("Register Entry -- %s: %s", entry.Label, entry.Amount)
		}
	}

	result.Balance = account.Balance()
	if !result.Balance.Equal(s.EndBalance) {
		return fail(runerror.NewRunError(runerror.CodeBalanceMismatch,
			fmt.Sprintf("Test #%d: expected end balance %s, got %s", index, s.EndBalance, result.Balance),
			map[string]string{"expected": s.EndBalance.String(), "actual": result.Balance.String()}))
	}

	result.Passed = true
	span.AddEvent("Scenario passed", trace.WithAttributes(attribute.String("balance", result.Balance.String())))
	return result
}

// Run executes every scenario in order. A failing scenario never stops the
// run.
func (r *Runner) Run(ctx context.Context, scenarios []model.Scenario) Report {
	ctx, span := scenarioTracer.Start(ctx, "Run")
	defer span.End()

	report := Report{StartedAt: time.Now(), Results: make([]ScenarioResult, 0, len(scenarios))}
	for i, s := range scenarios {
		res := r.RunScenario(ctx, i, s)
		report.Results = append(report.Results, res)
		report.Run++
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	report.CompletedAt = ptr.Time(time.Now())

	span.SetAttributes(attribute.Int("scenarios.run", report.Run), attribute.Int("scenarios.failed", report.Failed))
	logrus.Infof("Tests run: %d Passed: %d Failed: %d", report.Run, report.Passed, report.Failed)
	return report
}

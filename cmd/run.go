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

package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/savings"
	"github.com/jerry-enebeli/savings/config"
	"github.com/jerry-enebeli/savings/internal/notification"
	"github.com/jerry-enebeli/savings/internal/runerror"
	"github.com/jerry-enebeli/savings/internal/scenario"
	"github.com/jerry-enebeli/savings/model"
)

// runCommands creates the command that replays scenarios.
//
//	savings run                       # configured scenario file
//	savings run scenarios.csv         # a file
//	savings run 100 "20|10" 5 0.1 75  # one inline scenario
//	savings run -- -20 10 "" 0.05 -30 # leading negative amount
//
// Flags must come before the scenario fields so negative amounts such as
// -30 are read as fields, not as shorthand flags.
func runCommands(app *savingsInstance) *cobra.Command {
	var (
		rejectOverdraft bool
		monthEnd        bool
	)

	cmd := &cobra.Command{
		Use:   "run [file | initialBalance withdrawals deposits interestRate endBalance [runMonthEnd]]",
		Short: "replay savings account scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			cnf := *app.cnf
			if rejectOverdraft {
				cnf.Policy.WithdrawalPolicy = model.PolicyRejectOverdraft.String()
			}
			if monthEnd {
				cnf.Policy.ForceMonthEnd = true
			}

			scenarios, err := loadScenarios(&cnf, args)
			if err != nil {
				return runerror.Wrap(classifyParseError(err), err, nil)
			}

			ctx := contextOrBackground(cmd.Context())
			report := savings.NewRunner(&cnf).Run(ctx, scenarios)
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())

			if err := report.Err(); err != nil {
				notification.NotifyError(ctx, err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rejectOverdraft, "reject-overdraft", false, "reject withdrawals larger than the balance")
	cmd.Flags().BoolVar(&monthEnd, "month-end", false, "run month-end settlement for every scenario")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// loadScenarios picks the scenario source from the argument count: none reads
// the configured file, one is a file path, more form one inline scenario.
func loadScenarios(cnf *config.Configuration, args []string) ([]model.Scenario, error) {
	switch len(args) {
	case 0:
		logrus.Infof("reading scenarios from %s", cnf.ScenarioFile)
		return scenario.ParseFile(cnf.ScenarioFile)
	case 1:
		logrus.Infof("reading scenarios from %s", args[0])
		return scenario.ParseFile(args[0])
	default:
		logrus.Infof("reading scenario from command line: %v", args)
		return scenario.ParseArgs(args)
	}
}

func classifyParseError(err error) runerror.ErrorCode {
	if scenario.IsMalformed(err) {
		return runerror.CodeMalformedScenario
	}
	return runerror.CodeInternal
}

func exitCode(err error) int {
	return runerror.MapErrorToExitCode(err)
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

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
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/savings/config"
)

// Savings represents the CLI application, encapsulating the root Cobra command.
type Savings struct {
	cmd *cobra.Command
}

// savingsInstance holds the configuration loaded before any command runs.
type savingsInstance struct {
	cnf *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration file and sets the log level before running any command.
func preRun(app *savingsInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(*configFile); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cnf.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		app.cnf = cnf
		return nil
	}
}

// NewCLI creates the command-line interface with the run and config subcommands.
func NewCLI() *Savings {
	var configFile string
	s := &savingsInstance{}

	var rootCmd = &cobra.Command{
		Use:           "savings",
		Short:         "Replay savings account scenarios and check end balances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./savings.json", "Configuration file")
	rootCmd.PersistentPreRunE = preRun(s, &configFile)

	rootCmd.AddCommand(runCommands(s))
	rootCmd.AddCommand(configCommands(s))

	return &Savings{cmd: rootCmd}
}

// executeCLI runs the root command and exits with the code mapped from any error.
func (s Savings) executeCLI() {
	if err := s.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}

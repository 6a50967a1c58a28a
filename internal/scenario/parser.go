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

// Package scenario reads savings account test scenarios from their line
// format:
//
//	initialBalance,withdrawals,deposits,interestRate,expectedEndBalance[,runMonthEnd]
//
// Withdrawals and deposits are "|"-separated amounts; an empty field means none.
package scenario

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/savings/model"
)

const (
	fieldSeparator  = ","
	amountSeparator = "|"
	minFields       = 5
	maxFields       = 6
)

var ErrMalformedScenario = errors.New("malformed scenario")

// ParseAmounts splits a "|"-separated list of decimal amounts.
func ParseAmounts(amounts string) ([]decimal.Decimal, error) {
	amounts = strings.TrimSpace(amounts)
	if amounts == "" {
		return nil, nil
	}

	logrus.Debugf("amounts to split: %s", amounts)
	parts := strings.Split(amounts, amountSeparator)
	ret := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		amount, err := parseDecimal(part)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("an amount: %s", amount)
		ret = append(ret, amount)
	}
	return ret, nil
}

// ParseLine parses a single scenario line.
func ParseLine(line string) (model.Scenario, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields || len(fields) > maxFields {
		return model.Scenario{}, errors.Wrapf(ErrMalformedScenario, "expected %d or %d fields, got %d", minFields, maxFields, len(fields))
	}

	var (
		s   model.Scenario
		err error
	)
	if s.InitialBalance, err = parseDecimal(fields[0]); err != nil {
		return model.Scenario{}, errors.Wrap(err, "initial balance")
	}
	if s.Withdrawals, err = ParseAmounts(fields[1]); err != nil {
		return model.Scenario{}, errors.Wrap(err, "withdrawals")
	}
	if s.Deposits, err = ParseAmounts(fields[2]); err != nil {
		return model.Scenario{}, errors.Wrap(err, "deposits")
	}
	if s.InterestRate, err = parseDecimal(fields[3]); err != nil {
		return model.Scenario{}, errors.Wrap(err, "interest rate")
	}
	if s.EndBalance, err = parseDecimal(fields[4]); err != nil {
		return model.Scenario{}, errors.Wrap(err, "end balance")
	}
	if len(fields) == maxFields && strings.TrimSpace(fields[5]) != "" {
		s.RunMonthEnd, err = strconv.ParseBool(strings.TrimSpace(fields[5]))
		if err != nil {
			return model.Scenario{}, errors.Wrapf(ErrMalformedScenario, "run month end %q", strings.TrimSpace(fields[5]))
		}
	}

	if err := s.Validate(); err != nil {
		return model.Scenario{}, errors.Wrapf(ErrMalformedScenario, "%v", err)
	}
	return s, nil
}

// Parse reads one scenario per line. Blank lines and lines starting with "#"
// are skipped. Parsing stops at the first malformed line.
func Parse(r io.Reader) ([]model.Scenario, error) {
	var scenarios []model.Scenario
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		s.Line = lineNum
		scenarios = append(scenarios, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scenarios")
	}
	logrus.Infof("parsed %d scenarios", len(scenarios))
	return scenarios, nil
}

func ParseFile(path string) ([]model.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scenario file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// ParseArgs joins command-line arguments into one inline scenario, so both
// `100,20|10,5,0.1,75` and `100 20|10 5 0.1 75` are accepted.
func ParseArgs(args []string) ([]model.Scenario, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, strings.Trim(strings.TrimSpace(arg), fieldSeparator))
	}
	s, err := ParseLine(strings.Join(parts, fieldSeparator))
	if err != nil {
		return nil, err
	}
	return []model.Scenario{s}, nil
}

// IsMalformed reports whether err came from a badly formed scenario.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedScenario)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformedScenario, "amount %q", strings.TrimSpace(s))
	}
	return d, nil
}

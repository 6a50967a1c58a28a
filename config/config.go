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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/savings/model"
)

const (
	DEFAULT_SCENARIO_FILE = "testdata/SavingsAccountTest.csv"
	DEFAULT_LOG_LEVEL     = "info"
)

var ConfigStore atomic.Value

type PolicyConfig struct {
	WithdrawalPolicy string `json:"withdrawal_policy" envconfig:"SAVINGS_WITHDRAWAL_POLICY"`
	ForceMonthEnd    bool   `json:"force_month_end" envconfig:"SAVINGS_FORCE_MONTH_END"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url" envconfig:"SAVINGS_SLACK_WEBHOOK_URL"`
}

type Notification struct {
	Slack      SlackWebhook `json:"slack"`
	MaxRetries uint64       `json:"max_retries" envconfig:"SAVINGS_NOTIFICATION_MAX_RETRIES"`
}

type Configuration struct {
	ProjectName  string       `json:"project_name" envconfig:"SAVINGS_PROJECT_NAME"`
	ScenarioFile string       `json:"scenario_file" envconfig:"SAVINGS_SCENARIO_FILE"`
	LogLevel     string       `json:"log_level" envconfig:"SAVINGS_LOG_LEVEL"`
	Policy       PolicyConfig `json:"policy"`
	Notification Notification `json:"notification"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("savings", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called savings.json or set SAVINGS_* env variables")
	}
	return c, nil
}

// WithdrawalPolicy returns the configured policy. An unknown value is logged
// and falls back to model.PolicyPermissive.
func (cnf *Configuration) WithdrawalPolicy() model.WithdrawalPolicy {
	p, err := model.ParseWithdrawalPolicy(cnf.Policy.WithdrawalPolicy)
	if err != nil {
		logrus.WithError(err).Warnf("falling back to %s withdrawal policy", p)
	}
	return p
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.ScenarioFile = strings.TrimSpace(cnf.ScenarioFile)
	cnf.LogLevel = strings.ToLower(strings.TrimSpace(cnf.LogLevel))

	if cnf.ProjectName == "" {
		cnf.ProjectName = "Savings Ledger"
	}

	if cnf.ScenarioFile == "" {
		cnf.ScenarioFile = DEFAULT_SCENARIO_FILE
	}

	if cnf.LogLevel == "" {
		cnf.LogLevel = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.LogLevel); err != nil {
		return err
	}

	if _, err := model.ParseWithdrawalPolicy(cnf.Policy.WithdrawalPolicy); err != nil {
		return err
	}

	if cnf.Notification.MaxRetries == 0 {
		cnf.Notification.MaxRetries = 3
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}

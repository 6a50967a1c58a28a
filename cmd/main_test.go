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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerry-enebeli/savings/config"
	"github.com/jerry-enebeli/savings/internal/runerror"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := NewCLI()
	var out bytes.Buffer
	cli.cmd.SetOut(&out)
	cli.cmd.SetErr(&out)
	cli.cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.json")}, args...))
	err := cli.cmd.Execute()
	return out.String(), err
}

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	path := writeScenarios(t, "100,20|10,5,0.10,75\n100,,,0.10,110,true\n")
	cnf := &config.Configuration{ScenarioFile: path}

	fromConfig, err := loadScenarios(cnf, nil)
	require.NoError(t, err)
	assert.Len(t, fromConfig, 2)

	fromFile, err := loadScenarios(cnf, []string{path})
	require.NoError(t, err)
	assert.Len(t, fromFile, 2)

	inline, err := loadScenarios(cnf, []string{"100", "20|10", "5", "0.10", "75"})
	require.NoError(t, err)
	assert.Len(t, inline, 1)
}

func TestRunCommand_Passing(t *testing.T) {
	path := writeScenarios(t, "100,20|10,5,0.10,75\n100,,,0.10,110,true\n50,80,,0,-30\n")

	out, err := executeCommand(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Tests run: 3 Passed: 3 Failed: 0")
}

func TestRunCommand_DefaultFile(t *testing.T) {
	t.Setenv("SAVINGS_SCENARIO_FILE", filepath.Join("..", config.DEFAULT_SCENARIO_FILE))

	out, err := executeCommand(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Failed: 0")
}

func TestRunCommand_Inline(t *testing.T) {
	out, err := executeCommand(t, "run", "100", "", "", "0.10", "110", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests run: 1 Passed: 1 Failed: 0")
}

func TestRunCommand_InlineNegative(t *testing.T) {
	out, err := executeCommand(t, "run", "50", "80", "", "0", "-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests run: 1 Passed: 1 Failed: 0")

	out, err = executeCommand(t, "run", "--", "-20", "10", "", "0.05", "-31.5", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests run: 1 Passed: 1 Failed: 0")

	out, err = executeCommand(t, "run", "--month-end", "100", "", "", "0.10", "110")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests run: 1 Passed: 1 Failed: 0")
}

func TestRunCommand_Failing(t *testing.T) {
	path := writeScenarios(t, "100,20,,0,1\n")

	out, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, out, "Failed: 1")
	assert.Equal(t, runerror.ExitFailed, exitCode(err))
}

func TestRunCommand_RejectOverdraftFlag(t *testing.T) {
	path := writeScenarios(t, "50,80,,0,-30\n")

	_, err := executeCommand(t, "run", path)
	require.NoError(t, err)

	out, err := executeCommand(t, "run", "--reject-overdraft", path)
	require.Error(t, err)
	assert.Contains(t, out, "insufficient funds")
	assert.Equal(t, runerror.CodeTransactionRejected, runerror.CodeOf(err))
}

func TestRunCommand_MonthEndFlag(t *testing.T) {
	path := writeScenarios(t, "100,,,0.10,110\n")

	_, err := executeCommand(t, "run", path)
	require.Error(t, err)

	_, err = executeCommand(t, "run", "--month-end", path)
	require.NoError(t, err)
}

func TestRunCommand_Malformed(t *testing.T) {
	path := writeScenarios(t, "100,oops,,0,100\n")

	_, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, runerror.ExitBadInput, exitCode(err))
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, runerror.ExitInternalErr, exitCode(err))
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("SAVINGS_PROJECT_NAME", "CLI Project")

	out, err := executeCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, `"project_name": "CLI Project"`)
	assert.Contains(t, out, `"scenario_file"`)
}

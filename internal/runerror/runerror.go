package runerror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	CodeMalformedScenario   ErrorCode = "MALFORMED_SCENARIO"
	CodeTransactionRejected ErrorCode = "TRANSACTION_REJECTED"
	CodeBalanceMismatch     ErrorCode = "BALANCE_MISMATCH"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

const (
	ExitOK          = 0
	ExitFailed      = 1
	ExitBadInput    = 2
	ExitInternalErr = 3
)

type RunError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

func (e RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e RunError) Unwrap() error {
	return e.cause
}

// NewRunError creates a classified run failure.
//
// Parameters:
// - code: The failure category, which decides the process exit code.
// - message: A human-readable description of the failure.
// - details: Optional structured context, e.g. expected and actual balances.
func NewRunError(code ErrorCode, message string, details interface{}) RunError {
	logrus.WithField("code", code).Debug(message)
	return RunError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap classifies err under code, keeping it reachable through errors.Is.
func Wrap(code ErrorCode, err error, details interface{}) RunError {
	e := NewRunError(code, err.Error(), details)
	e.cause = err
	return e
}

// CodeOf returns the code of the first RunError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var runErr RunError
	if errors.As(err, &runErr) {
		return runErr.Code
	}
	return CodeInternal
}

// MapErrorToExitCode maps err to the CLI exit status: ExitOK for nil,
// ExitFailed for scenario failures, ExitBadInput for malformed scenarios and
// ExitInternalErr for anything else.
func MapErrorToExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CodeOf(err) {
	case CodeTransactionRejected, CodeBalanceMismatch:
		return ExitFailed
	case CodeMalformedScenario:
		return ExitBadInput
	default:
		return ExitInternalErr
	}
}

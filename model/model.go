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
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrInsufficientFunds is returned by an overdraft-rejecting account when a
	// withdrawal is larger than the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix,
// e.g. "acc_1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func GenerateUUIDWithSuffix(module string) string {
	return fmt.Sprintf("%s_%s", module, uuid.New().String())
}

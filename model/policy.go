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
	"strings"
)

// WithdrawalPolicy decides whether a withdrawal may take the balance below zero.
type WithdrawalPolicy int

const (
	// PolicyPermissive lets any non-negative withdrawal through, overdrawing the
	// account if needed.
	PolicyPermissive WithdrawalPolicy = iota
	// PolicyRejectOverdraft refuses withdrawals larger than the current balance.
	PolicyRejectOverdraft
)

func (p WithdrawalPolicy) String() string {
	switch p {
	case PolicyPermissive:
		return "permissive"
	case PolicyRejectOverdraft:
		return "reject_overdraft"
	}
	return fmt.Sprintf("WithdrawalPolicy(%d)", int(p))
}

// ParseWithdrawalPolicy maps a configuration value to a policy. An empty
// string selects PolicyPermissive.
func ParseWithdrawalPolicy(s string) (WithdrawalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return PolicyPermissive, nil
	case "reject_overdraft", "reject-overdraft", "strict":
		return PolicyRejectOverdraft, nil
	}
	return PolicyPermissive, fmt.Errorf("unknown withdrawal policy %q", s)
}

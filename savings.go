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
	"fmt"

	"github.com/jerry-enebeli/savings/config"
	"github.com/jerry-enebeli/savings/model"
)

// Runner replays scenarios against fresh savings accounts. It keeps no
// per-scenario state, so one Runner can execute any number of runs.
type Runner struct {
	policy        model.WithdrawalPolicy
	forceMonthEnd bool
	ownerFor      func(index int) *model.Owner
}

func testOwner(index int) *model.Owner {
	return model.NewOwner(fmt.Sprintf("TEST_%d", index))
}

// NewRunner builds a Runner from the loaded configuration.
func NewRunner(cnf *config.Configuration) *Runner {
	return &Runner{
		policy:        cnf.WithdrawalPolicy(),
		forceMonthEnd: cnf.Policy.ForceMonthEnd,
		ownerFor:      testOwner,
	}
}

// Policy returns the withdrawal policy every account in a run is opened with.
func (r *Runner) Policy() model.WithdrawalPolicy {
	return r.policy
}

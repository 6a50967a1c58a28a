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
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Owner identifies the holder of an account. It carries no state of its own.
type Owner struct {
	IdentityID string `json:"identity_id"`
	Name       string `json:"name"`
}

// NewOwner creates an owner with a fresh "idt_" identity ID. Surrounding
// whitespace is trimmed from name; an empty name is only caught by Validate.
func NewOwner(name string) *Owner {
	return &Owner{
		IdentityID: GenerateUUIDWithSuffix("idt"),
		Name:       strings.TrimSpace(name),
	}
}

// Validate checks that the owner has an identity ID and a non-blank name.
func (o *Owner) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.IdentityID, validation.Required),
		validation.Field(&o.Name, validation.Required),
	)
}

func (o *Owner) String() string {
	return o.Name
}

// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package helpers

import (
	"github.com/go-playground/validator/v10"
)

// Validate is a validator instance to be used everywhere. Packages
// owning a type register their own rules during init.
var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

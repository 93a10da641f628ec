// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

//go:build !release

package helpers

import (
	"github.com/kylelemons/godebug/pretty"
)

// Values with unexported fields, like VLAN IDs, are compared through
// their String() method.
var prettyC = pretty.Config{
	Diffable:          true,
	PrintStringers:    true,
	SkipZeroFields:    true,
	IncludeUnexported: false,
}

// Diff return a diff of two objects. If no diff, an empty string is
// returned.
func Diff(a, b interface{}) string {
	return prettyC.Compare(a, b)
}

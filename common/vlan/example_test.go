// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan_test

import (
	"errors"
	"fmt"

	"vlanid/common/vlan"
)

func ExampleNewOptionalTaggedID() {
	for _, raw := range []vlan.RawID{0, 100, 4095} {
		id, err := vlan.NewOptionalTaggedID(raw)
		if errors.Is(err, vlan.ErrInvalidVLANID) {
			fmt.Printf("%d: invalid\n", raw)
			continue
		}
		if tagged, ok := id.Tagged(); ok {
			fmt.Printf("%d: tagged %#v, % x\n", raw, tagged, id.BEBytes())
		} else {
			fmt.Printf("%d: %s\n", raw, id.Kind())
		}
	}
	// Output:
	// 0: native
	// 100: tagged TaggedID(100), 00 64
	// 4095: invalid
}

func ExampleCompare() {
	tagged := vlan.MustNewTaggedID(10)
	optional := vlan.MustNewOptionalTaggedID(10)
	fmt.Println(vlan.Compare(vlan.Native, tagged), vlan.Compare(tagged, optional))
	// Output: -1 0
}

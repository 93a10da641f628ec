// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan_test

import (
	"fmt"
	"hash/maphash"
	"slices"
	"testing"

	"vlanid/common/helpers"
	"vlanid/common/vlan"
)

// asAll returns raw expressed with every type able to hold it.
func asAll(t *testing.T, raw vlan.RawID) []vlan.RawValuer {
	t.Helper()
	result := []vlan.RawValuer{}
	if n, err := vlan.NewNativeID(raw); err == nil {
		result = append(result, n)
	}
	if tagged, err := vlan.NewTaggedID(raw); err == nil {
		result = append(result, tagged)
	}
	o, err := vlan.NewOptionalTaggedID(raw)
	if err != nil {
		t.Fatalf("NewOptionalTaggedID(%d) error:\n%+v", raw, err)
	}
	return append(result, o)
}

func TestBEBytes(t *testing.T) {
	cases := []struct {
		Pos      helpers.Pos
		Value    vlan.RawValuer
		Expected [2]byte
	}{
		{helpers.Mark(), vlan.MaxTagged, [2]byte{0x0f, 0xfe}},
		{helpers.Mark(), vlan.Native, [2]byte{0x00, 0x00}},
		{helpers.Mark(), vlan.MustNewOptionalTaggedID(1), [2]byte{0x00, 0x01}},
		{helpers.Mark(), vlan.OptionalNative, [2]byte{0x00, 0x00}},
		{helpers.Mark(), vlan.MustNewTaggedID(0x123), [2]byte{0x01, 0x23}},
	}
	for _, tc := range cases {
		if got := vlan.BEBytes(tc.Value); got != tc.Expected {
			t.Errorf("%sBEBytes(%#v) = %x, want %x", tc.Pos, tc.Value, got, tc.Expected)
		}
	}
	if got := vlan.MaxTagged.BEBytes(); got != [2]byte{0x0f, 0xfe} {
		t.Errorf("MaxTagged.BEBytes() = %x", got)
	}
	if got := vlan.Native.BEBytes(); got != [2]byte{} {
		t.Errorf("Native.BEBytes() = %x", got)
	}
	if got := vlan.MustNewOptionalTaggedID(1).BEBytes(); got != [2]byte{0, 1} {
		t.Errorf("OptionalTaggedID(1).BEBytes() = %x", got)
	}
}

func TestCrossTypeEquality(t *testing.T) {
	var native vlan.NativeID
	if !vlan.OptionalNative.Equal(native) {
		t.Error("OptionalNative != NativeID{}")
	}
	if !native.Equal(vlan.OptionalNative) {
		t.Error("NativeID{} != OptionalNative")
	}
	if native.Raw() != 0 {
		t.Errorf("NativeID{}.Raw() = %d, want 0", native.Raw())
	}
	for _, raw := range []vlan.RawID{1, 2, 100, 4093, 4094} {
		tagged := vlan.MustNewTaggedID(raw)
		optional := vlan.FromTagged(tagged)
		if !optional.Equal(tagged) || !tagged.Equal(optional) {
			t.Errorf("FromTagged(%d) != TaggedID(%d)", raw, raw)
		}
		if optional.Equal(native) || native.Equal(tagged) {
			t.Errorf("%d == native", raw)
		}
	}
}

func TestCrossTypeOrdering(t *testing.T) {
	samples := []vlan.RawID{0, 1, 2, 10, 100, 1000, 4093, 4094}
	seed := maphash.MakeSeed()
	for _, a := range samples {
		for _, b := range samples {
			for _, va := range asAll(t, a) {
				for _, vb := range asAll(t, b) {
					t.Run(fmt.Sprintf("%#v vs %#v", va, vb), func(t *testing.T) {
						expected := 0
						if a < b {
							expected = -1
						} else if a > b {
							expected = 1
						}
						if got := vlan.Compare(va, vb); got != expected {
							t.Errorf("Compare() = %d, want %d", got, expected)
						}
						if got := vlan.Less(va, vb); got != (a < b) {
							t.Errorf("Less() = %v, want %v", got, a < b)
						}
						if got := vlan.Equal(va, vb); got != (a == b) {
							t.Errorf("Equal() = %v, want %v", got, a == b)
						}
						if a == b && vlan.Hash(seed, va) != vlan.Hash(seed, vb) {
							t.Error("Hash() differs for equal values")
						}
					})
				}
			}
		}
	}
}

func TestMethodsDelegate(t *testing.T) {
	seed := maphash.MakeSeed()
	tagged := vlan.MustNewTaggedID(100)
	optional := vlan.MustNewOptionalTaggedID(100)
	if tagged.Compare(optional) != 0 || optional.Compare(tagged) != 0 {
		t.Error("Compare() between TaggedID(100) and OptionalTaggedID(100) is not 0")
	}
	if tagged.Compare(vlan.Native) != 1 || vlan.Native.Compare(tagged) != -1 {
		t.Error("Compare() with native VLAN is not ordered")
	}
	if tagged.Hash(seed) != optional.Hash(seed) {
		t.Error("Hash() differs between TaggedID(100) and OptionalTaggedID(100)")
	}
	if vlan.Native.Hash(seed) != vlan.OptionalNative.Hash(seed) {
		t.Error("Hash() differs between NativeID and OptionalNative")
	}
	if tagged.Hash(seed) == vlan.Native.Hash(seed) {
		t.Error("Hash() of TaggedID(100) is the same as native VLAN")
	}
}

func TestSort(t *testing.T) {
	got := []vlan.RawValuer{
		vlan.MustNewTaggedID(20),
		vlan.OptionalMaxTagged,
		vlan.Native,
		vlan.MustNewOptionalTaggedID(5),
		vlan.MinTagged,
	}
	slices.SortFunc(got, vlan.Compare)
	raws := []vlan.RawID{}
	for _, v := range got {
		raws = append(raws, v.Raw())
	}
	if diff := helpers.Diff(raws, []vlan.RawID{0, 1, 5, 20, 4094}); diff != "" {
		t.Errorf("SortFunc() (-got, +want):\n%s", diff)
	}
}

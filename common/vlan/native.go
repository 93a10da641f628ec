// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan

import "hash/maphash"

// NativeID is the native (untagged) VLAN. It is semantically 0 and
// its zero value is the only value.
type NativeID struct{}

// NativeValue is the raw value of the native VLAN.
const NativeValue RawID = 0

// Native is the native VLAN.
var Native = NativeID{}

// NewNativeID returns the native VLAN if raw is 0.
func NewNativeID(raw RawID) (NativeID, error) {
	if raw != NativeValue {
		return NativeID{}, ErrInvalidVLANID
	}
	return NativeID{}, nil
}

// Raw returns 0.
func (NativeID) Raw() RawID {
	return NativeValue
}

// BEBytes returns the big-endian encoding of the native VLAN.
func (n NativeID) BEBytes() [2]byte {
	return BEBytes(n)
}

// Equal tells if other is also 0.
func (n NativeID) Equal(other RawValuer) bool {
	return Equal(n, other)
}

// Compare compares the native VLAN with any other VLAN ID.
func (n NativeID) Compare(other RawValuer) int {
	return Compare(n, other)
}

// Hash returns the hash of the native VLAN.
func (n NativeID) Hash(seed maphash.Seed) uint64 {
	return Hash(seed, n)
}

// String renders the native VLAN as 0.
func (NativeID) String() string {
	return "0"
}

// GoString renders the native VLAN for %#v.
func (NativeID) GoString() string {
	return "NativeID"
}

// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

// Package vlan models IEEE 802.1Q VLAN identifiers as validated values.
//
// Three types are provided. NativeID is the untagged VLAN (0). TaggedID
// can only hold a tag in the 1-4094 range (4095 is reserved by the
// standard). OptionalTaggedID is either of them and spans 0-4094. All
// of them convert to and from a raw uint16, and comparison, ordering
// and hashing are done on this raw value, whatever the type of each
// operand.
package vlan

import (
	"encoding/binary"
	"errors"
	"hash/maphash"
)

// RawID is the raw representation of a VLAN ID, as found on the wire.
type RawID = uint16

// ErrInvalidVLANID is returned when a raw value is outside the domain
// of the requested type.
var ErrInvalidVLANID = errors.New("invalid VLAN ID")

// RawValuer is implemented by any type that can be turned into a raw
// VLAN ID.
type RawValuer interface {
	Raw() RawID
}

// BEBytes returns the 2-byte big-endian encoding of a VLAN ID.
func BEBytes(v RawValuer) [2]byte {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], v.Raw())
	return out
}

// Equal tells if two VLAN IDs have the same raw value.
func Equal(a, b RawValuer) bool {
	return a.Raw() == b.Raw()
}

// Compare returns -1, 0 or +1 depending on whether a is lower, equal or
// greater than b.
func Compare(a, b RawValuer) int {
	ra, rb := a.Raw(), b.Raw()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return 0
}

// Less tells if a is strictly lower than b. It can be used with
// sort.Slice or slices.SortFunc.
func Less(a, b RawValuer) bool {
	return a.Raw() < b.Raw()
}

// Hash hashes the big-endian encoding of a VLAN ID. Two values with the
// same raw value get the same hash for a given seed.
func Hash(seed maphash.Seed, v RawValuer) uint64 {
	b := BEBytes(v)
	return maphash.Bytes(seed, b[:])
}

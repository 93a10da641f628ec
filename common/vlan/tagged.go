// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan

import (
	"fmt"
	"hash/maphash"
	"strconv"
)

const (
	// MinTaggedValue is the lowest raw value of a tagged VLAN.
	MinTaggedValue RawID = 1
	// MaxTaggedValue is the highest raw value of a tagged VLAN. 4095 is
	// reserved.
	MaxTaggedValue RawID = 4094
)

var (
	// MinTagged is the lowest tagged VLAN (1).
	MinTagged = newTaggedIDUnchecked(MinTaggedValue)
	// MaxTagged is the highest tagged VLAN (4094).
	MaxTagged = newTaggedIDUnchecked(MaxTaggedValue)
	// OneTagged is the same as MinTagged.
	OneTagged = MinTagged
)

// TaggedID is a VLAN ID valid for a tagged frame (1-4094). It has the
// same layout as an uint16.
//
// The zero value is not a valid tagged VLAN: values should be built with
// NewTaggedID or decoded from JSON, YAML or text, which all go through
// the same check.
type TaggedID struct {
	value RawID
}

// NewTaggedID returns a tagged VLAN if raw is in the 1-4094 range.
func NewTaggedID(raw RawID) (TaggedID, error) {
	if raw < MinTaggedValue || raw > MaxTaggedValue {
		return TaggedID{}, ErrInvalidVLANID
	}
	return newTaggedIDUnchecked(raw), nil
}

// MustNewTaggedID is like NewTaggedID but panics on an invalid value.
// It should only be used with constant values.
func MustNewTaggedID(raw RawID) TaggedID {
	id, err := NewTaggedID(raw)
	if err != nil {
		panic(fmt.Sprintf("%d: %s", raw, err))
	}
	return id
}

// newTaggedIDUnchecked builds a tagged VLAN without checking its
// value. The caller must have checked raw is in range.
func newTaggedIDUnchecked(raw RawID) TaggedID {
	return TaggedID{value: raw}
}

// IsValid tells if the tagged VLAN was built through NewTaggedID. Only
// the zero value is invalid.
func (t TaggedID) IsValid() bool {
	return t.value != 0
}

// Raw returns the raw value of the tagged VLAN.
func (t TaggedID) Raw() RawID {
	return t.value
}

// BEBytes returns the big-endian encoding of the tagged VLAN.
func (t TaggedID) BEBytes() [2]byte {
	return BEBytes(t)
}

// Equal tells if the tagged VLAN has the same raw value as other. The
// zero TaggedID compares equal to the native VLAN.
func (t TaggedID) Equal(other RawValuer) bool {
	return Equal(t, other)
}

// Compare compares the tagged VLAN with any other VLAN ID.
func (t TaggedID) Compare(other RawValuer) int {
	return Compare(t, other)
}

// Hash returns the hash of the tagged VLAN.
func (t TaggedID) Hash(seed maphash.Seed) uint64 {
	return Hash(seed, t)
}

// String renders the tagged VLAN as a decimal integer.
func (t TaggedID) String() string {
	return strconv.FormatUint(uint64(t.value), 10)
}

// GoString renders the tagged VLAN with its type, like TaggedID(100).
func (t TaggedID) GoString() string {
	return fmt.Sprintf("TaggedID(%d)", t.value)
}

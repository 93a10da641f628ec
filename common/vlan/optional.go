// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan

import (
	"fmt"
	"hash/maphash"
)

// Kind tells which variant an OptionalTaggedID holds.
type Kind uint8

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=lower -output=kind_enumer.go

const (
	// KindNative is the native VLAN variant.
	KindNative Kind = iota
	// KindTagged is the tagged VLAN variant.
	KindTagged
)

const (
	// OctetSize is the size of an encoded OptionalTaggedID in octets.
	OctetSize = 2
	// Bits is the number of bits allocated to an OptionalTaggedID.
	Bits = 16
	// EffectiveBits is the number of bits actually used by a VLAN ID.
	EffectiveBits = 12
)

var (
	// OptionalNative is the native VLAN.
	OptionalNative = OptionalTaggedID{}
	// OptionalMinTagged is the lowest tagged VLAN (1).
	OptionalMinTagged = OptionalTaggedID{tagged: MinTagged}
	// OptionalMaxTagged is the highest tagged VLAN (4094).
	OptionalMaxTagged = OptionalTaggedID{tagged: MaxTagged}
)

// OptionalTaggedID is either the native VLAN or a tagged VLAN. It is
// the VLAN counterpart of an optional value, with 0 meaning none. Its
// zero value is the native VLAN and it has the same layout as an
// uint16.
type OptionalTaggedID struct {
	// An invalid (zero) TaggedID stands for the native variant.
	tagged TaggedID
}

// NewOptionalTaggedID returns the native VLAN for 0, a tagged VLAN for
// 1-4094 and an error otherwise.
func NewOptionalTaggedID(raw RawID) (OptionalTaggedID, error) {
	switch {
	case raw == NativeValue:
		return OptionalNative, nil
	case raw >= MinTaggedValue && raw <= MaxTaggedValue:
		return OptionalTaggedID{tagged: newTaggedIDUnchecked(raw)}, nil
	}
	return OptionalTaggedID{}, ErrInvalidVLANID
}

// MustNewOptionalTaggedID is like NewOptionalTaggedID but panics on an
// invalid value. It should only be used with constant values.
func MustNewOptionalTaggedID(raw RawID) OptionalTaggedID {
	id, err := NewOptionalTaggedID(raw)
	if err != nil {
		panic(fmt.Sprintf("%d: %s", raw, err))
	}
	return id
}

// FromNative wraps the native VLAN.
func FromNative(NativeID) OptionalTaggedID {
	return OptionalNative
}

// FromTagged wraps a tagged VLAN. It should only be given values
// built with NewTaggedID: the zero TaggedID is not a tagged VLAN and is
// turned into the native VLAN. Use FromTaggedChecked when the origin of
// the value is unknown.
func FromTagged(t TaggedID) OptionalTaggedID {
	return OptionalTaggedID{tagged: t}
}

// FromTaggedChecked is like FromTagged but returns ErrInvalidVLANID for
// the zero TaggedID.
func FromTaggedChecked(t TaggedID) (OptionalTaggedID, error) {
	if !t.IsValid() {
		return OptionalTaggedID{}, ErrInvalidVLANID
	}
	return FromTagged(t), nil
}

// Kind returns the active variant.
func (o OptionalTaggedID) Kind() Kind {
	if o.tagged.IsValid() {
		return KindTagged
	}
	return KindNative
}

// IsNative tells if this is the native VLAN.
func (o OptionalTaggedID) IsNative() bool {
	return o.Kind() == KindNative
}

// Native returns the native VLAN if this is the active variant.
func (o OptionalTaggedID) Native() (NativeID, bool) {
	return Native, o.IsNative()
}

// Tagged returns the tagged VLAN if this is the active variant.
func (o OptionalTaggedID) Tagged() (TaggedID, bool) {
	if o.IsNative() {
		return TaggedID{}, false
	}
	return o.tagged, true
}

// Raw returns 0 for the native VLAN and the tag otherwise.
func (o OptionalTaggedID) Raw() RawID {
	if t, ok := o.Tagged(); ok {
		return t.Raw()
	}
	return Native.Raw()
}

// BEBytes returns the big-endian encoding of the VLAN.
func (o OptionalTaggedID) BEBytes() [2]byte {
	return BEBytes(o)
}

// Equal tells if the VLAN has the same raw value as other.
func (o OptionalTaggedID) Equal(other RawValuer) bool {
	return Equal(o, other)
}

// Compare compares the VLAN with any other VLAN ID.
func (o OptionalTaggedID) Compare(other RawValuer) int {
	return Compare(o, other)
}

// Hash returns the hash of the VLAN.
func (o OptionalTaggedID) Hash(seed maphash.Seed) uint64 {
	return Hash(seed, o)
}

// String renders the VLAN as a decimal integer, 0 being the native VLAN.
func (o OptionalTaggedID) String() string {
	if t, ok := o.Tagged(); ok {
		return t.String()
	}
	return Native.String()
}

// GoString renders the VLAN with its variant, like Tagged(TaggedID(100)).
func (o OptionalTaggedID) GoString() string {
	if t, ok := o.Tagged(); ok {
		return fmt.Sprintf("Tagged(%#v)", t)
	}
	return fmt.Sprintf("Native(%#v)", Native)
}

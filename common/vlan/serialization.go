// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// VLAN IDs are encoded as plain integers in JSON and YAML and as a
// decimal integer in text. Decoding goes through the same constructors
// as the programmatic API and rejects exactly the same values.

func parseJSON(data []byte) (RawID, error) {
	var raw RawID
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return 0, fmt.Errorf("null is not a VLAN ID: %w", ErrInvalidVLANID)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("cannot decode %s: %w", data, ErrInvalidVLANID)
	}
	return raw, nil
}

func parseText(text []byte) (RawID, error) {
	raw, err := strconv.ParseUint(string(text), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q: %w", text, ErrInvalidVLANID)
	}
	return RawID(raw), nil
}

func parseYAML(node *yaml.Node) (RawID, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", node.Line, node.Value, ErrInvalidVLANID)
	}
	var raw RawID
	if err := node.Decode(&raw); err != nil {
		return 0, fmt.Errorf("line %d: cannot decode %q: %w", node.Line, node.Value, ErrInvalidVLANID)
	}
	return raw, nil
}

// decodeInto builds a value with the provided constructor from the
// result of one of the parse functions and stores it into dst.
func decodeInto[T any](dst *T, build func(RawID) (T, error), raw RawID, err error) error {
	if err != nil {
		return err
	}
	v, err := build(raw)
	if err != nil {
		return fmt.Errorf("%d: %w", raw, err)
	}
	*dst = v
	return nil
}

func marshalText(v RawValuer) ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v.Raw()), 10), nil
}

// checkTagged refuses to encode the zero TaggedID as its output would
// not decode back.
func checkTagged(t TaggedID) error {
	if !t.IsValid() {
		return fmt.Errorf("cannot encode zero TaggedID: %w", ErrInvalidVLANID)
	}
	return nil
}

// MarshalJSON encodes the native VLAN as 0.
func (n NativeID) MarshalJSON() ([]byte, error) { return marshalText(n) }

// UnmarshalJSON only accepts 0.
func (n *NativeID) UnmarshalJSON(data []byte) error {
	raw, err := parseJSON(data)
	return decodeInto(n, NewNativeID, raw, err)
}

// MarshalText encodes the native VLAN as 0.
func (n NativeID) MarshalText() ([]byte, error) { return marshalText(n) }

// UnmarshalText only accepts 0.
func (n *NativeID) UnmarshalText(text []byte) error {
	raw, err := parseText(text)
	return decodeInto(n, NewNativeID, raw, err)
}

// MarshalYAML encodes the native VLAN as 0.
func (n NativeID) MarshalYAML() (interface{}, error) { return n.Raw(), nil }

// UnmarshalYAML only accepts 0.
func (n *NativeID) UnmarshalYAML(node *yaml.Node) error {
	raw, err := parseYAML(node)
	return decodeInto(n, NewNativeID, raw, err)
}

// MarshalJSON encodes the tagged VLAN as an integer.
func (t TaggedID) MarshalJSON() ([]byte, error) { return t.MarshalText() }

// UnmarshalJSON decodes an integer in the 1-4094 range.
func (t *TaggedID) UnmarshalJSON(data []byte) error {
	raw, err := parseJSON(data)
	return decodeInto(t, NewTaggedID, raw, err)
}

// MarshalText encodes the tagged VLAN as a decimal integer.
func (t TaggedID) MarshalText() ([]byte, error) {
	if err := checkTagged(t); err != nil {
		return nil, err
	}
	return marshalText(t)
}

// UnmarshalText decodes a decimal integer in the 1-4094 range.
func (t *TaggedID) UnmarshalText(text []byte) error {
	raw, err := parseText(text)
	return decodeInto(t, NewTaggedID, raw, err)
}

// MarshalYAML encodes the tagged VLAN as an integer.
func (t TaggedID) MarshalYAML() (interface{}, error) {
	if err := checkTagged(t); err != nil {
		return nil, err
	}
	return t.Raw(), nil
}

// UnmarshalYAML decodes an integer in the 1-4094 range.
func (t *TaggedID) UnmarshalYAML(node *yaml.Node) error {
	raw, err := parseYAML(node)
	return decodeInto(t, NewTaggedID, raw, err)
}

// MarshalJSON encodes the VLAN as an integer, 0 being the native VLAN.
func (o OptionalTaggedID) MarshalJSON() ([]byte, error) { return marshalText(o) }

// UnmarshalJSON decodes an integer in the 0-4094 range.
func (o *OptionalTaggedID) UnmarshalJSON(data []byte) error {
	raw, err := parseJSON(data)
	return decodeInto(o, NewOptionalTaggedID, raw, err)
}

// MarshalText encodes the VLAN as a decimal integer.
func (o OptionalTaggedID) MarshalText() ([]byte, error) { return marshalText(o) }

// UnmarshalText decodes a decimal integer in the 0-4094 range.
func (o *OptionalTaggedID) UnmarshalText(text []byte) error {
	raw, err := parseText(text)
	return decodeInto(o, NewOptionalTaggedID, raw, err)
}

// MarshalYAML encodes the VLAN as an integer, 0 being the native VLAN.
func (o OptionalTaggedID) MarshalYAML() (interface{}, error) { return o.Raw(), nil }

// UnmarshalYAML decodes an integer in the 0-4094 range.
func (o *OptionalTaggedID) UnmarshalYAML(node *yaml.Node) error {
	raw, err := parseYAML(node)
	return decodeInto(o, NewOptionalTaggedID, raw, err)
}

// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package vlan

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"vlanid/common/helpers"
)

// ConfigurationUnmarshallerHook decodes VLAN IDs from the integers
// produced by YAML or JSON decoders. Strings are left to
// mapstructure.TextUnmarshallerHookFunc().
func ConfigurationUnmarshallerHook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Value) (interface{}, error) {
		from = helpers.ElemOrIdentity(from)
		var build func(RawID) (interface{}, error)
		switch to.Type() {
		case reflect.TypeOf(NativeID{}):
			build = func(raw RawID) (interface{}, error) { return NewNativeID(raw) }
		case reflect.TypeOf(TaggedID{}):
			build = func(raw RawID) (interface{}, error) { return NewTaggedID(raw) }
		case reflect.TypeOf(OptionalTaggedID{}):
			build = func(raw RawID) (interface{}, error) { return NewOptionalTaggedID(raw) }
		default:
			return from.Interface(), nil
		}

		var raw RawID
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := from.Int()
			if v < 0 || v > math.MaxUint16 {
				return nil, fmt.Errorf("%d: %w", v, ErrInvalidVLANID)
			}
			raw = RawID(v)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v := from.Uint()
			if v > math.MaxUint16 {
				return nil, fmt.Errorf("%d: %w", v, ErrInvalidVLANID)
			}
			raw = RawID(v)
		case reflect.Float32, reflect.Float64:
			// JSON decoders produce float64 for all numbers
			v := from.Float()
			if v != math.Trunc(v) || v < 0 || v > math.MaxUint16 {
				return nil, fmt.Errorf("%v: %w", v, ErrInvalidVLANID)
			}
			raw = RawID(v)
		default:
			return from.Interface(), nil
		}
		v, err := build(raw)
		if err != nil {
			return nil, fmt.Errorf("%d: %w", raw, err)
		}
		return v, nil
	}
}

// inRange builds a validator checking an integer field is between lo
// and hi.
func inRange(lo, hi RawID) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := field.Int()
			return v >= int64(lo) && v <= int64(hi)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v := field.Uint()
			return v >= uint64(lo) && v <= uint64(hi)
		}
		return false
	}
}

func init() {
	helpers.RegisterMapstructureUnmarshallerHook(ConfigurationUnmarshallerHook())

	// Validate VLAN types through their raw value. "required" rejects
	// the zero TaggedID.
	helpers.Validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(RawValuer); ok {
			return v.Raw()
		}
		return nil
	}, NativeID{}, TaggedID{}, OptionalTaggedID{})
	helpers.Validate.RegisterValidation("vlan", inRange(MinTaggedValue, MaxTaggedValue))
	helpers.Validate.RegisterValidation("vlan_optional", inRange(NativeValue, MaxTaggedValue))
}

// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package cmd_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"vlanid/cmd"
	"vlanid/common/helpers"
	"vlanid/common/helpers/yaml"
	"vlanid/common/vlan"
)

func TestLoadPlan(t *testing.T) {
	got, err := cmd.LoadPlan(filepath.Join("testdata", "plan", "plan.yaml"))
	if err != nil {
		t.Fatalf("LoadPlan() error:\n%+v", err)
	}
	expected := cmd.PlanConfiguration{
		DefaultVLAN: vlan.OneTagged,
		Ports: []cmd.PortConfiguration{
			{
				Name:    "eth0",
				Native:  vlan.OptionalMinTagged,
				Allowed: []vlan.TaggedID{vlan.MustNewTaggedID(10), vlan.MustNewTaggedID(20), vlan.MustNewTaggedID(30)},
			}, {
				Name:    "eth1",
				Native:  vlan.OptionalNative,
				Allowed: []vlan.TaggedID{vlan.MaxTagged},
			}, {
				Name:    "uplink",
				Native:  vlan.MustNewOptionalTaggedID(100),
				Allowed: []vlan.TaggedID{vlan.MustNewTaggedID(10), vlan.MustNewTaggedID(20)},
			},
		},
	}
	if diff := helpers.Diff(got, expected); diff != "" {
		t.Fatalf("LoadPlan() (-got, +want):\n%s", diff)
	}
	if got.Ports[1].Native.Kind() != vlan.KindNative {
		t.Errorf("LoadPlan() eth1 native kind = %s, want native", got.Ports[1].Native.Kind())
	}
}

func TestLoadPlanErrors(t *testing.T) {
	cases := []struct {
		Pos        helpers.Pos
		File       string
		Contains   string
		Validation bool
	}{
		{helpers.Mark(), "reserved.yaml", "invalid VLAN ID", false},
		{helpers.Mark(), "duplicate.yaml", "unique", true},
		{helpers.Mark(), "unnamed.yaml", "required", true},
		{helpers.Mark(), "missing.yaml", "cannot read", false},
		{helpers.Mark(), "loop.yaml", "include cycle on loop.yaml", false},
	}
	for _, tc := range cases {
		_, err := cmd.LoadPlan(filepath.Join("testdata", "plan", tc.File))
		if err == nil {
			t.Errorf("%sLoadPlan(%q) did not error", tc.Pos, tc.File)
			continue
		}
		if !strings.Contains(err.Error(), tc.Contains) {
			t.Errorf("%sLoadPlan(%q) error:\n%+v\nshould contain %q", tc.Pos, tc.File, err, tc.Contains)
		}
		var verr validator.ValidationErrors
		if errors.As(err, &verr) != tc.Validation {
			t.Errorf("%sLoadPlan(%q) error is a validation error: %v, want %v", tc.Pos, tc.File, !tc.Validation, tc.Validation)
		}
	}
}

func TestLint(t *testing.T) {
	root := cmd.RootCmd
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"lint", "--dump=false", filepath.Join("testdata", "plan", "plan.yaml")})
	if err := root.Execute(); err != nil {
		t.Fatalf("`lint` error:\n%+v", err)
	}
	got := strings.Split(buf.String(), "\n")
	want := []string{
		"eth0: native=1 allowed=10,20,30",
		"eth1: native=0 allowed=4094",
		"uplink: native=100 allowed=10,20",
		"",
	}
	if diff := helpers.Diff(got, want); diff != "" {
		t.Errorf("`lint` (-got, +want):\n%s", diff)
	}
}

func TestLintDump(t *testing.T) {
	root := cmd.RootCmd
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"lint", "--dump", filepath.Join("testdata", "plan", "plan.yaml")})
	if err := root.Execute(); err != nil {
		t.Fatalf("`lint --dump` error:\n%+v", err)
	}
	if !strings.HasPrefix(buf.String(), "---\n") {
		t.Fatalf("`lint --dump` output does not start with a document marker:\n%s", buf.String())
	}
	var got interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error:\n%+v", err)
	}
	want := map[string]interface{}{
		"default-vlan": 1,
		"ports": []interface{}{
			map[string]interface{}{"name": "eth0", "native": 1, "allowed": []interface{}{10, 20, 30}},
			map[string]interface{}{"name": "eth1", "native": 0, "allowed": []interface{}{4094}},
			map[string]interface{}{"name": "uplink", "native": 100, "allowed": []interface{}{10, 20}},
		},
	}
	if diff := helpers.Diff(got, want); diff != "" {
		t.Errorf("`lint --dump` (-got, +want):\n%s", diff)
	}
}

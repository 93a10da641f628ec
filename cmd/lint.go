// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vlanid/common/helpers"
	"vlanid/common/helpers/yaml"
	"vlanid/common/vlan"
)

// PlanConfiguration describes the VLANs configured on a set of ports.
type PlanConfiguration struct {
	DefaultVLAN vlan.TaggedID       `yaml:"default-vlan" validate:"required"`
	Ports       []PortConfiguration `yaml:"ports" validate:"dive"`
}

// PortConfiguration describes the VLANs of a single port.
type PortConfiguration struct {
	Name string `yaml:"name" validate:"required"`
	// Native is the VLAN untagged frames belong to, 0 to drop them.
	Native vlan.OptionalTaggedID `yaml:"native"`
	// Allowed lists the VLANs accepted as tagged frames.
	Allowed []vlan.TaggedID `yaml:"allowed" validate:"unique,dive,required"`
}

// DefaultPlanConfiguration is the default configuration for a plan.
func DefaultPlanConfiguration() PlanConfiguration {
	return PlanConfiguration{
		DefaultVLAN: vlan.OneTagged,
	}
}

// DefaultPortConfiguration is the default configuration for a port.
func DefaultPortConfiguration() PortConfiguration {
	return PortConfiguration{
		Native: vlan.OptionalMinTagged,
	}
}

type lintOptions struct {
	Dump bool
}

// LintOptions stores the command-line option values for the lint
// command.
var LintOptions lintOptions

var lintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Check a VLAN plan",
	Long: `Check a YAML file describing the VLANs of a set of ports. The file
may include other files with the "!include" tag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := LoadPlan(args[0])
		if err != nil {
			return err
		}
		if LintOptions.Dump {
			output, err := yaml.Marshal(plan)
			if err != nil {
				return fmt.Errorf("unable to dump plan: %w", err)
			}
			cmd.Print("---\n")
			cmd.Print(string(output))
			return nil
		}
		for _, port := range plan.Ports {
			allowed := make([]string, 0, len(port.Allowed))
			for _, id := range port.Allowed {
				allowed = append(allowed, id.String())
			}
			cmd.Printf("%s: native=%s allowed=%s\n",
				port.Name, port.Native, strings.Join(allowed, ","))
		}
		log.Info().Str("plan", args[0]).Int("ports", len(plan.Ports)).Msg("VLAN plan is valid")
		return nil
	},
}

// LoadPlan reads, decodes and validates a VLAN plan.
func LoadPlan(path string) (PlanConfiguration, error) {
	var rawConfig interface{}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := yaml.UnmarshalWithInclude(os.DirFS(dir), file, &rawConfig); err != nil {
		return PlanConfiguration{}, fmt.Errorf("unable to parse plan: %w", err)
	}

	plan := DefaultPlanConfiguration()
	decoder, err := mapstructure.NewDecoder(helpers.GetMapStructureDecoderConfig(&plan,
		helpers.RenameKeyUnmarshallerHook(PortConfiguration{}, "PVID", "Native"),
		helpers.DefaultValuesUnmarshallerHook(DefaultPortConfiguration()),
	))
	if err != nil {
		return PlanConfiguration{}, fmt.Errorf("unable to create plan decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return PlanConfiguration{}, fmt.Errorf("unable to decode plan: %w", err)
	}
	if err := helpers.Validate.Struct(plan); err != nil {
		return PlanConfiguration{}, fmt.Errorf("invalid plan: %w", err)
	}
	return plan, nil
}

func init() {
	RootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVarP(&LintOptions.Dump, "dump", "D", false,
		"Dump the plan after decoding")
}

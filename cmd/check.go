// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vlanid/common/vlan"
)

type checkOptions struct {
	Tagged bool
}

// CheckOptions stores the command-line option values for the check
// command.
var CheckOptions checkOptions

var checkCmd = &cobra.Command{
	Use:   "check ID...",
	Short: "Classify VLAN IDs",
	Long: `Classify each provided VLAN ID as native, tagged or invalid. The
command fails if at least one ID is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, arg := range args {
			kind, err := classify(arg, CheckOptions.Tagged)
			if err != nil {
				log.Debug().Err(err).Str("input", arg).Msg("invalid VLAN ID")
				cmd.Printf("%s: invalid\n", arg)
				invalid++
				continue
			}
			cmd.Printf("%s: %s\n", arg, kind)
		}
		if invalid > 0 {
			return fmt.Errorf("%d invalid VLAN ID(s): %w", invalid, vlan.ErrInvalidVLANID)
		}
		return nil
	},
}

// classify parses input as a VLAN ID. When tagged is true, the native
// VLAN is rejected.
func classify(input string, tagged bool) (vlan.Kind, error) {
	if tagged {
		var id vlan.TaggedID
		if err := id.UnmarshalText([]byte(input)); err != nil {
			return 0, err
		}
		return vlan.KindTagged, nil
	}
	var id vlan.OptionalTaggedID
	if err := id.UnmarshalText([]byte(input)); err != nil {
		return 0, err
	}
	return id.Kind(), nil
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&CheckOptions.Tagged, "tagged", "t", false,
		"Reject the native VLAN (0)")
}

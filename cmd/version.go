// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"runtime"
	runtimedebug "runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"vlanid/common/helpers"
	"vlanid/common/vlan"
)

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Long:  `Display version and build information about vlanid.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Printf("vlanid %s\n", helpers.Version)
		cmd.Printf("  Built with: %s\n", runtime.Version())
		if info, ok := runtimedebug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if strings.HasPrefix(setting.Key, "GO") {
					cmd.Printf("  Build setting %s=%s\n", setting.Key, setting.Value)
				}
			}
		}
		cmd.Println()
		cmd.Printf("Tagged range: %s-%s\n", vlan.MinTagged, vlan.MaxTagged)
		cmd.Printf("Native VLAN: %s\n", vlan.Native)
		return nil
	},
}

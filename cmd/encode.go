// SPDX-FileCopyrightText: 2026 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vlanid/common/constants"
	"vlanid/common/vlan"
)

type encodeOptions struct {
	TPID bool
}

// EncodeOptions stores the command-line option values for the encode
// command.
var EncodeOptions encodeOptions

var encodeCmd = &cobra.Command{
	Use:   "encode ID...",
	Short: "Encode VLAN IDs in network byte order",
	Long: `Print the big-endian encoding of each VLAN ID, as found in the
tag control information of a Dot1Q header. With --tpid, the encoding is
prefixed by the Dot1Q ether type.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			var id vlan.OptionalTaggedID
			if err := id.UnmarshalText([]byte(arg)); err != nil {
				return fmt.Errorf("cannot encode %q: %w", arg, err)
			}
			encoded := encode(id, EncodeOptions.TPID)
			log.Debug().Stringer("vlan", id).Str("encoded", encoded).Msg("VLAN ID encoded")
			cmd.Printf("%s %s\n", id, encoded)
		}
		return nil
	},
}

func encode(id vlan.RawValuer, withTPID bool) string {
	out := []byte{}
	if withTPID {
		out = binary.BigEndian.AppendUint16(out, constants.ETypeVLAN)
	}
	b := vlan.BEBytes(id)
	out = append(out, b[:]...)
	return hex.EncodeToString(out)
}

func init() {
	RootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&EncodeOptions.TPID, "tpid", false,
		"Prefix with the Dot1Q ether type")
}

// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

// Package constants contains constants shared with the wire formats
// VLAN IDs are embedded in.
package constants

const (
	// ETypeVLAN is the ether type (TPID) for a Dot1Q tag
	ETypeVLAN = 0x8100
	// ETypeQinQ is the ether type (TPID) for a Dot1ad service tag
	ETypeQinQ = 0x88a8
	// TCIVLANMask selects the VLAN ID in a Dot1Q tag control information
	TCIVLANMask = 0x0fff
)

// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package helpers

// Version is the version of vlanid. It is set at build time with
// -ldflags "-X vlanid/common/helpers.Version=...".
var Version = "dev"

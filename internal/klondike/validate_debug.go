//go:build debug

// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

// validate_debug.go turns on the invariant checker, the same way the
// teacher's main_debug.go turns on verbose logging: both are pulled in
// only by the "debug" build tag.
func init() {
	checkInvariants = MustValidate
}

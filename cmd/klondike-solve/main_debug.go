//go:build debug

// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log/slog"
	"os"
)

// Debug builds default to verbose logging even without -verbose, the
// same override the teacher's main_debug.go applies.
func init() {
	setLogging = func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

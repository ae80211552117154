// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import "fmt"

// These variables are set via -ldflags at build time.
var (
	// gitCommit is the short git SHA of the build.
	gitCommit = "unknown"

	// buildTime is the UTC timestamp of the build.
	buildTime = "unknown"

	// version is the semantic version.
	version = "0.1.0-dev"
)

// versionInfo returns a formatted version string suitable for --version output.
func versionInfo() string {
	return fmt.Sprintf("%s (%s, %s)", version, gitCommit, buildTime)
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package main implements the gid command
package main

import (
	"fmt"
	"os"

	"github.com/pion/gid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gid: %v\n", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT
// Package: sx/cmd/sx
//
// main.go - the sx executable.

// Command sx runs the sx demonstration programs.
package main

import "github.com/katalvlaran/sx/cmd/sx/cmd"

func main() {
	cmd.Execute()
}

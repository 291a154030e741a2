// Package main is the entry point for the harness CLI.
package main

import "harness.dev/pkg/harness/cmd"

func main() {
	cmd.Execute()
}

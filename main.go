// Package main is the entry point for the gridpath CLI.
package main

import "gridpath.dev/pkg/gridpath/cmd"

func main() {
	cmd.Execute()
}

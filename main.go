// Package main is the entry point for the buildsync CLI application.
// It synchronizes the client workspace with a remote build daemon's
// project model graphs.
package main

import (
	"buildsync/cli/cmd"
)

// main is the entry point for the buildsync CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the buildsync CLI.
// It implements subcommands for synchronizing the client workspace with a
// remote build daemon, querying project models, managing the workspace
// registry and inspecting sync history using the Cobra CLI framework. The
// package handles command parsing, execution, and provides a terminal UI
// with spinners and progress indicators.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the buildsync CLI application.
var rootCmd = &cobra.Command{
	Use:           "buildsync",
	Short:         "Buildsync CLI for synchronizing workspaces with a build daemon",
	Long:          `Buildsync is a command-line tool that connects to a remote build daemon, retrieves project model graphs and keeps the client workspace view in sync with the structures the daemon reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("buildsync %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}

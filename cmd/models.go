// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"buildsync/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	modelsAddr string
)

// modelsCmd retrieves project models without running synchronization tasks.
// It uses the same capability-gated protocol selection as sync, minus the
// task-execution setup phase.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Retrieve project models without running synchronization tasks",
	Long: `The models command connects to the build daemon and retrieves the current
project model graph without running any synchronization tasks first. It is a
read-only view of what the daemon reports for the build.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr := resolveDaemonAddr(modelsAddr, cfg)
		if addr == "" {
			fmt.Println("⚠️  No build daemon address configured.")
			fmt.Println("   Set one with --addr, the BUILDSYNC_ADDR environment variable,")
			fmt.Println("   or the daemon.addr field in the config file.")
			return nil
		}

		res, err := runQuery(cmd, addr, false)
		if err != nil {
			return presentQueryError(err)
		}

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Daemon version: ") + pterm.NewStyle(pterm.FgCyan).Sprint(res.DaemonVersion))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Strategy:       ") + pterm.NewStyle(pterm.FgCyan).Sprint(res.Strategy.String()))
		pterm.Println()
		renderProjects(res.Projects)
		return nil
	},
}

func init() {
	modelsCmd.Flags().StringVar(&modelsAddr, "addr", "", "Build daemon address (host or host:port)")
	rootCmd.AddCommand(modelsCmd)
}

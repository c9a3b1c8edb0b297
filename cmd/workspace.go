// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"path/filepath"

	"buildsync/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	addClosed bool
)

// workspaceCmd groups the subcommands that manage the client-side project
// registry. The registry is what gets sent to the daemon as workspace
// runtime info when the selected protocol strategy supports it.
var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage the client-side workspace project registry",
	Long: `The workspace command manages the registry of client-known projects: their
names, filesystem locations and open/closed state. Daemons with runtime-info
support receive this registry alongside model queries so they can resolve
cross-build dependencies against what the client already has open.`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered workspace projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Workspace.Root != "" {
			pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Workspace root: ") + cfg.Workspace.Root)
		}
		if len(cfg.Workspace.Projects) == 0 {
			pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("No projects registered. Use 'buildsync workspace add'."))
			return nil
		}
		data := pterm.TableData{{"Project", "Location", "State"}}
		for _, p := range cfg.Workspace.Projects {
			state := "open"
			if !p.Open {
				state = "closed"
			}
			data = append(data, []string{p.Name, p.Dir, state})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add NAME DIR",
	Short: "Register a project in the workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, dir := args[0], args[1]
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Workspace.FindProject(name) >= 0 {
			return fmt.Errorf("a project named %q is already registered", name)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving project directory: %w", err)
		}
		cfg.Workspace.Projects = append(cfg.Workspace.Projects, config.ProjectEntry{
			Name: name,
			Dir:  abs,
			Open: !addClosed,
		})
		if cfg.Workspace.Root == "" {
			cfg.Workspace.Root = filepath.Dir(abs)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("Registered project %s", name)
		return nil
	},
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a project from the workspace registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		i := cfg.Workspace.FindProject(args[0])
		if i < 0 {
			return fmt.Errorf("no project named %q is registered", args[0])
		}
		cfg.Workspace.Projects = append(cfg.Workspace.Projects[:i], cfg.Workspace.Projects[i+1:]...)
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("Removed project %s", args[0])
		return nil
	},
}

var workspaceOpenCmd = &cobra.Command{
	Use:   "open NAME",
	Short: "Mark a registered project as open",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectOpen(args[0], true)
	},
}

var workspaceCloseCmd = &cobra.Command{
	Use:   "close NAME",
	Short: "Mark a registered project as closed",
	Long: `Marks a registered project as closed. Daemons with closed-project dependency
substitution replace references to closed projects with their binary
equivalents during synchronization.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectOpen(args[0], false)
	},
}

var workspaceRootCmd = &cobra.Command{
	Use:   "set-root DIR",
	Short: "Set the workspace root location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving workspace root: %w", err)
		}
		cfg.Workspace.Root = abs
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("Workspace root set to %s", abs)
		return nil
	},
}

func setProjectOpen(name string, open bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	i := cfg.Workspace.FindProject(name)
	if i < 0 {
		return fmt.Errorf("no project named %q is registered", name)
	}
	cfg.Workspace.Projects[i].Open = open
	if err := config.Save(cfg); err != nil {
		return err
	}
	state := "open"
	if !open {
		state = "closed"
	}
	pterm.Success.Printfln("Project %s is now %s", name, state)
	return nil
}

func init() {
	workspaceAddCmd.Flags().BoolVar(&addClosed, "closed", false, "Register the project in closed state")
	workspaceCmd.AddCommand(workspaceListCmd, workspaceAddCmd, workspaceRemoveCmd, workspaceOpenCmd, workspaceCloseCmd, workspaceRootCmd)
	rootCmd.AddCommand(workspaceCmd)
}

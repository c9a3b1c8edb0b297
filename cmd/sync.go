// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"buildsync/cli/internal/bridge"
	"buildsync/cli/internal/bridge/model"
	"buildsync/cli/internal/config"
	cerrors "buildsync/cli/internal/errors"
	"buildsync/cli/internal/history"
	"buildsync/cli/internal/logging"
	"buildsync/cli/internal/query"
	"buildsync/cli/internal/workspace"

	"atomicgo.dev/cursor"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	syncAddr    string
	verboseSync bool
)

// syncCmd represents the sync command. It connects to the build daemon,
// runs the build's configured synchronization tasks, retrieves the project
// model graph and records the run in the local history.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run synchronization tasks and retrieve project models",
	Long: `The sync command connects to the build daemon, runs the synchronization tasks
configured in the build and retrieves the resulting project model graph. The
request protocol is selected automatically from the daemon version: newer
daemons receive composite queries enriched with the client workspace view,
older daemons fall back to plainer variants.

Each run is recorded in the local sync history (see 'buildsync history').`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if verboseSync {
			os.Setenv("BUILDSYNC_VERBOSE", "1")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr := resolveDaemonAddr(syncAddr, cfg)
		if addr == "" {
			fmt.Println("⚠️  No build daemon address configured.")
			fmt.Println("   Set one with --addr, the BUILDSYNC_ADDR environment variable,")
			fmt.Println("   or the daemon.addr field in the config file.")
			return nil
		}

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Daemon: ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(logging.Mask(addr)))

		cursor.Hide()
		defer cursor.Show()

		startAt := time.Now()
		res, err := runQuery(cmd, addr, true)
		recordRun(startAt, res, err)
		if err != nil {
			return presentQueryError(err)
		}

		pterm.Println()
		pterm.Success.Printfln("Synchronized %d project(s) with daemon %s (%s)",
			len(res.Projects), res.DaemonVersion, res.Strategy)
		pterm.Println()
		renderProjects(res.Projects)
		return nil
	},
}

// runQuery dials the daemon and executes one model query. The connection
// lives exactly as long as the call; the engine never retains it.
func runQuery(cmd *cobra.Command, addr string, wantsTasks bool) (*query.Result, error) {
	stopSpinner := startInlineSpinner(os.Stderr, "Connecting to build daemon...", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	conn, err := bridge.Dial(cmd.Context(), addr)
	stopSpinner()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	engine := &query.Engine{Snapshots: workspace.Provider{Load: loadRegistry}}

	stopSpinner = startInlineSpinner(os.Stderr, "Retrieving project models...", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	defer stopSpinner()
	var res *query.Result
	if wantsTasks {
		res, err = engine.RunTasksAndQueryModels(cmd.Context(), conn)
	} else {
		res, err = engine.QueryModels(cmd.Context(), conn)
	}
	if err != nil {
		return nil, err
	}
	// Older daemons leave project name collision detection to the client.
	if !res.Capabilities.ProjectNameDeduplication {
		if err := query.EnsureUniqueNames(res.Projects); err != nil {
			return res, err
		}
	}
	return res, nil
}

// loadRegistry reads the workspace registry fresh for every snapshot.
func loadRegistry() (string, []model.WorkspaceProject) {
	cfg, err := config.Load()
	if err != nil {
		return "", nil
	}
	projects := make([]model.WorkspaceProject, 0, len(cfg.Workspace.Projects))
	for _, p := range cfg.Workspace.Projects {
		projects = append(projects, model.WorkspaceProject{Name: p.Name, Dir: p.Dir, Open: p.Open})
	}
	return cfg.Workspace.Root, projects
}

// presentQueryError renders a query failure for the terminal and returns
// the error for the exit code.
func presentQueryError(err error) error {
	var dup *cerrors.DuplicateProjectNameError
	if errors.As(err, &dup) {
		pterm.Println()
		pterm.Error.Println(dup.Error())
		pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("→ Rename the project or close the conflicting one, then sync again"))
		return err
	}
	var e *cerrors.E
	if errors.As(err, &e) && (e.Kind == cerrors.ConnectFailed || e.Kind == cerrors.RemoteActionFailed || e.Kind == cerrors.EnvironmentQueryFailed) {
		logging.PresentConnectionError(err.Error())
		return err
	}
	pterm.Error.Println(logging.PresentError("synchronization failed", err))
	return err
}

// recordRun appends the run to the local history, best effort.
func recordRun(startAt time.Time, res *query.Result, runErr error) {
	path, err := history.DefaultPath()
	if err != nil {
		return
	}
	store, err := history.Open(path)
	if err != nil {
		return
	}
	defer store.Close()

	rec := history.Record{
		StartedAt: startAt,
		Duration:  time.Since(startAt),
		Outcome:   "ok",
	}
	if res != nil {
		rec.DaemonVersion = res.DaemonVersion
		rec.Strategy = res.Strategy.String()
		rec.ProjectCount = len(res.Projects)
	}
	if runErr != nil {
		rec.Outcome = logging.Mask(runErr.Error())
	}
	_ = store.Append(rec)
}

func init() {
	syncCmd.Flags().StringVar(&syncAddr, "addr", "", "Build daemon address (host or host:port)")
	syncCmd.Flags().BoolVarP(&verboseSync, "verbose", "v", false, "Include technical details in error output")
	rootCmd.AddCommand(syncCmd)
}

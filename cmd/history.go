// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"buildsync/cli/internal/history"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
)

// historyCmd lists recorded sync runs from the local history database.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent synchronization runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := history.DefaultPath()
		if err != nil {
			return err
		}
		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("No sync runs recorded yet."))
			return nil
		}

		data := pterm.TableData{{"Started", "Daemon", "Strategy", "Projects", "Duration", "Outcome"}}
		for _, r := range records {
			data = append(data, []string{
				r.StartedAt.Format("2006-01-02 15:04:05"),
				r.DaemonVersion,
				r.Strategy,
				fmt.Sprintf("%d", r.ProjectCount),
				r.Duration.Truncate(time.Millisecond).String(),
				r.Outcome,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

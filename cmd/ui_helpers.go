// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"buildsync/cli/internal/bridge/model"
	"buildsync/cli/internal/config"

	"github.com/pterm/pterm"
)

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function, which clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// primitive protection against very long lines
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// resolveDaemonAddr picks the daemon address: flag > BUILDSYNC_ADDR > config.
func resolveDaemonAddr(flagAddr string, cfg config.Config) string {
	if strings.TrimSpace(flagAddr) != "" {
		return strings.TrimSpace(flagAddr)
	}
	if env := os.Getenv("BUILDSYNC_ADDR"); strings.TrimSpace(env) != "" {
		return strings.TrimSpace(env)
	}
	return strings.TrimSpace(cfg.Daemon.Addr)
}

// renderProjects prints the retrieved project models as a table, in the
// order the daemon returned them.
func renderProjects(projects []model.Project) {
	if len(projects) == 0 {
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("No project models returned."))
		return
	}
	data := pterm.TableData{{"Project", "Path", "Location", "Dependencies", "Tasks"}}
	for _, p := range projects {
		data = append(data, []string{
			p.Name,
			p.Path,
			p.Dir,
			strings.Join(p.Dependencies, ", "),
			fmt.Sprintf("%d", len(p.Tasks)),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

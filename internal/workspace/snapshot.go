// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package workspace builds point-in-time snapshots of the client-side
// project registry for daemon queries that send workspace runtime info.
package workspace

import "buildsync/cli/internal/bridge/model"

// Snapshot copies the caller's current project list into an immutable
// workspace view. Input order and fields are preserved exactly; no
// filtering or validation happens here — the caller guarantees the list
// reflects current state at call time.
func Snapshot(rootDir string, projects []model.WorkspaceProject) model.Workspace {
	out := make([]model.WorkspaceProject, len(projects))
	copy(out, projects)
	return model.Workspace{RootDir: rootDir, Projects: out}
}

// Provider adapts a registry lookup into the query engine's snapshot
// provider. Load is invoked fresh for every snapshot because the workspace
// may change between queries.
type Provider struct {
	Load func() (rootDir string, projects []model.WorkspaceProject)
}

func (p Provider) Snapshot() model.Workspace {
	root, projects := p.Load()
	return Snapshot(root, projects)
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"buildsync/cli/internal/buildver"
	"buildsync/cli/internal/bridge/model"
)

// SnapshotProvider supplies the current workspace view when a strategy
// sends runtime info to the daemon. The snapshot is built fresh per call;
// the engine never caches it.
type SnapshotProvider interface {
	Snapshot() model.Workspace
}

// ComposedAction describes what one query call sends over the connection:
// an optional setup phase followed by the model query itself. Built and
// discarded within a single call.
type ComposedAction struct {
	// Setup holds the phase-1 actions, executed together before the query.
	// Empty for single-phase strategies.
	Setup []model.Action
	// Query is the model query, executed as the final phase.
	Query model.Action
}

// Compose builds the action sequence for a strategy. The snapshot provider
// is consulted only for runtime-info variants; passing a nil provider for
// one of those is a programming error and panics.
func Compose(s Strategy, caps buildver.Capabilities, snapshots SnapshotProvider) ComposedAction {
	switch s {
	case CompositeQuery:
		return ComposedAction{Query: compositeQuery(nil)}
	case CompositeQueryWithRuntimeInfo:
		ws := takeSnapshot(snapshots)
		return ComposedAction{Query: compositeQuery(&ws)}
	case TasksThenCompositeQuery:
		return ComposedAction{
			Setup: []model.Action{{Kind: model.ActionRunSyncTasks}},
			Query: compositeQuery(nil),
		}
	case TasksThenCompositeQueryWithRuntimeInfo:
		ws := takeSnapshot(snapshots)
		setup := []model.Action{{Kind: model.ActionRunSyncTasks}}
		if caps.ClosedProjectSubstitution {
			// A composite query for the substitution marker model makes the
			// daemon run substitution in included builds too.
			setup = append(setup, model.Action{
				Kind:      model.ActionCompositeModelQuery,
				Model:     model.ModelClosedProjectDependencies,
				Workspace: &ws,
			})
		}
		return ComposedAction{Setup: setup, Query: compositeQuery(&ws)}
	default:
		return ComposedAction{Query: model.Action{
			Kind:  model.ActionModelQuery,
			Model: model.ModelProject,
		}}
	}
}

func compositeQuery(ws *model.Workspace) model.Action {
	return model.Action{
		Kind:      model.ActionCompositeModelQuery,
		Model:     model.ModelProject,
		Workspace: ws,
	}
}

func takeSnapshot(snapshots SnapshotProvider) model.Workspace {
	if snapshots == nil {
		panic("query: nil snapshot provider for a runtime-info strategy")
	}
	return snapshots.Snapshot()
}

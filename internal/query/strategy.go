// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query implements the capability-gated model query engine. For a
// given daemon version it decides which request protocol variant to use to
// retrieve project models, whether to run synchronization tasks first,
// whether to send workspace runtime info alongside the query, and how to
// execute multi-phase requests against a single connection.
package query

import "buildsync/cli/internal/buildver"

// Strategy identifies the request protocol variant used to retrieve models.
// The set is closed; SelectStrategy always returns exactly one member.
type Strategy int

const (
	// SingleProjectQuery retrieves only the root project model. Used when
	// the daemon predates composite builds.
	SingleProjectQuery Strategy = iota
	// CompositeQuery retrieves models for all projects across included builds.
	CompositeQuery
	// CompositeQueryWithRuntimeInfo additionally sends the client workspace
	// view so the daemon can resolve cross-build references.
	CompositeQueryWithRuntimeInfo
	// TasksThenCompositeQuery runs the configured synchronization tasks in a
	// setup phase before the composite query.
	TasksThenCompositeQuery
	// TasksThenCompositeQueryWithRuntimeInfo combines the setup phase with a
	// runtime-info query. When the daemon supports closed-project dependency
	// substitution the composer attaches the substitution query to the setup
	// phase as well.
	TasksThenCompositeQueryWithRuntimeInfo
)

func (s Strategy) String() string {
	switch s {
	case SingleProjectQuery:
		return "single_project_query"
	case CompositeQuery:
		return "composite_query"
	case CompositeQueryWithRuntimeInfo:
		return "composite_query_with_runtime_info"
	case TasksThenCompositeQuery:
		return "tasks_then_composite_query"
	case TasksThenCompositeQueryWithRuntimeInfo:
		return "tasks_then_composite_query_with_runtime_info"
	}
	return "unknown"
}

// SelectStrategy picks the protocol variant for the given capabilities.
// Total and deterministic over all flag combinations. wantsTasks=false
// never yields a TasksThen* variant regardless of flags.
func SelectStrategy(caps buildver.Capabilities, wantsTasks bool) Strategy {
	if wantsTasks && caps.SyncTasks {
		if caps.WorkspaceRuntimeInfo {
			return TasksThenCompositeQueryWithRuntimeInfo
		}
		return TasksThenCompositeQuery
	}
	if caps.WorkspaceRuntimeInfo && caps.CompositeBuilds {
		return CompositeQueryWithRuntimeInfo
	}
	if caps.CompositeBuilds {
		return CompositeQuery
	}
	return SingleProjectQuery
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"context"

	"buildsync/cli/internal/bridge"
	"buildsync/cli/internal/bridge/model"
	"buildsync/cli/internal/buildver"
)

// Engine is the capability-gated model query engine. One call resolves the
// daemon version for the connection, selects a protocol strategy, composes
// the matching action sequence and executes it in one round trip.
//
// The engine holds no state across calls and performs no locking; a
// connection carries at most one in-flight call, serialized by the caller.
type Engine struct {
	// Snapshots supplies the workspace view for runtime-info strategies.
	// May be nil when the caller knows the daemon predates runtime info.
	Snapshots SnapshotProvider
}

// Result is the outcome of one successful query call.
type Result struct {
	// Projects is the model collection in daemon order.
	Projects []model.Project
	// DaemonVersion is the version the daemon reported for this call.
	DaemonVersion string
	// Capabilities are the flags classified from DaemonVersion.
	Capabilities buildver.Capabilities
	// Strategy is the protocol variant that was selected.
	Strategy Strategy
}

// QueryModels retrieves project models without running synchronization tasks.
func (e *Engine) QueryModels(ctx context.Context, conn bridge.Connection) (*Result, error) {
	return e.run(ctx, conn, false)
}

// RunTasksAndQueryModels runs the build's configured synchronization tasks
// in a setup phase, then retrieves project models. On daemons without sync
// task support it degrades to a plain query.
func (e *Engine) RunTasksAndQueryModels(ctx context.Context, conn bridge.Connection) (*Result, error) {
	return e.run(ctx, conn, true)
}

func (e *Engine) run(ctx context.Context, conn bridge.Connection, wantsTasks bool) (*Result, error) {
	env, err := conn.Environment(ctx)
	if err != nil {
		return nil, err
	}
	caps := buildver.Classify(env.DaemonVersion)
	strategy := SelectStrategy(caps, wantsTasks)
	projects, err := Execute(ctx, conn, Compose(strategy, caps, e.Snapshots))
	if err != nil {
		return nil, Reinterpret(err)
	}
	return &Result{
		Projects:      projects,
		DaemonVersion: env.DaemonVersion,
		Capabilities:  caps,
		Strategy:      strategy,
	}, nil
}

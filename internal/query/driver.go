// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"context"

	"buildsync/cli/internal/bridge"
	"buildsync/cli/internal/bridge/model"
)

// Execute runs a composed action against conn in a single round trip and
// returns the project models produced by the final query.
//
// For a two-phase action the setup phase's result is captured into a
// throwaway handler; the protocol requires every phase to produce a result
// even when nobody reads it. Setup must fully complete before the query
// phase starts because synchronization tasks may change the project graph
// the query observes; phase ordering is the connection's contract and this
// driver composes the request to rely on it. Nothing is retried.
func Execute(ctx context.Context, conn bridge.Connection, act ComposedAction) ([]model.Project, error) {
	var out []model.Project
	req := model.Request{}
	if len(act.Setup) > 0 {
		req.Phases = append(req.Phases, model.Phase{
			Actions: act.Setup,
			Handle:  func([]model.Project) {},
		})
	}
	req.Phases = append(req.Phases, model.Phase{
		Actions: []model.Action{act.Query},
		Handle:  func(projects []model.Project) { out = projects },
	})
	if err := conn.Run(ctx, req); err != nil {
		return nil, err
	}
	return out, nil
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"context"
	"errors"
	"testing"

	"buildsync/cli/internal/bridge/model"
)

// Daemon at 5.5: composite + runtime info + sync tasks, but no closed
// project substitution. "Run tasks then query" must produce a two-phase
// request with a bare sync-tasks setup phase and a runtime-info query.
func TestEngineRunTasksAndQueryModels(t *testing.T) {
	want := []model.Project{{Name: "app", Path: ":"}, {Name: "lib", Path: ":lib"}}
	conn := &fakeConn{
		version: "5.5",
		results: [][]model.Project{nil, want},
	}
	snapshots := &fixedSnapshots{ws: testWorkspace()}
	engine := &Engine{Snapshots: snapshots}

	res, err := engine.RunTasksAndQueryModels(context.Background(), conn)
	if err != nil {
		t.Fatalf("RunTasksAndQueryModels() error = %v", err)
	}
	if res.Strategy != TasksThenCompositeQueryWithRuntimeInfo {
		t.Errorf("Strategy = %v, want %v", res.Strategy, TasksThenCompositeQueryWithRuntimeInfo)
	}
	if res.DaemonVersion != "5.5" {
		t.Errorf("DaemonVersion = %q, want %q", res.DaemonVersion, "5.5")
	}
	if len(res.Projects) != 2 || res.Projects[0].Name != "app" || res.Projects[1].Name != "lib" {
		t.Errorf("Projects = %v, want the query phase result unmodified", res.Projects)
	}

	if len(conn.requests) != 1 {
		t.Fatalf("connection saw %d action requests, want 1", len(conn.requests))
	}
	req := conn.requests[0]
	if len(req.Phases) != 2 {
		t.Fatalf("request has %d phases, want 2", len(req.Phases))
	}
	// No substitution action at 5.5: setup is the sync-tasks action alone.
	if len(req.Phases[0].Actions) != 1 || req.Phases[0].Actions[0].Kind != model.ActionRunSyncTasks {
		t.Errorf("setup phase = %+v, want a single sync-tasks action", req.Phases[0].Actions)
	}
	q := req.Phases[1].Actions[0]
	if q.Kind != model.ActionCompositeModelQuery || q.Model != model.ModelProject {
		t.Errorf("query phase action = %+v, want composite project query", q)
	}
	if q.Workspace == nil || q.Workspace.RootDir != "/ws" {
		t.Errorf("query workspace = %+v, want the client snapshot attached", q.Workspace)
	}
	if snapshots.calls != 1 {
		t.Errorf("snapshot provider consulted %d times, want 1 per call", snapshots.calls)
	}
}

// A daemon predating composite builds gets a single root query no matter
// what the caller asked for.
func TestEngineAncientDaemonFallsBackToSingleQuery(t *testing.T) {
	for _, wantsTasks := range []bool{false, true} {
		conn := &fakeConn{
			version: "2.6",
			results: [][]model.Project{{{Name: "root", Path: ":"}}},
		}
		engine := &Engine{}

		var res *Result
		var err error
		if wantsTasks {
			res, err = engine.RunTasksAndQueryModels(context.Background(), conn)
		} else {
			res, err = engine.QueryModels(context.Background(), conn)
		}
		if err != nil {
			t.Fatalf("wantsTasks=%v: error = %v", wantsTasks, err)
		}
		if res.Strategy != SingleProjectQuery {
			t.Errorf("wantsTasks=%v: Strategy = %v, want %v", wantsTasks, res.Strategy, SingleProjectQuery)
		}

		req := conn.requests[0]
		if len(req.Phases) != 1 || len(req.Phases[0].Actions) != 1 {
			t.Fatalf("wantsTasks=%v: request = %+v, want exactly one query action", wantsTasks, req)
		}
		if a := req.Phases[0].Actions[0]; a.Kind != model.ActionModelQuery || a.Workspace != nil {
			t.Errorf("wantsTasks=%v: action = %+v, want plain root model query", wantsTasks, a)
		}
	}
}

func TestEngineSubstitutionActionAt56(t *testing.T) {
	conn := &fakeConn{
		version: "5.6",
		results: [][]model.Project{nil, {{Name: "app"}}},
	}
	engine := &Engine{Snapshots: &fixedSnapshots{ws: testWorkspace()}}

	if _, err := engine.RunTasksAndQueryModels(context.Background(), conn); err != nil {
		t.Fatalf("RunTasksAndQueryModels() error = %v", err)
	}
	setup := conn.requests[0].Phases[0].Actions
	if len(setup) != 2 {
		t.Fatalf("setup phase has %d actions, want sync tasks plus substitution", len(setup))
	}
	if setup[1].Model != model.ModelClosedProjectDependencies {
		t.Errorf("setup[1].Model = %v, want %v", setup[1].Model, model.ModelClosedProjectDependencies)
	}
}

func TestEngineEnvironmentFailure(t *testing.T) {
	wantErr := errors.New("daemon unreachable")
	conn := &fakeConn{envErr: wantErr}
	engine := &Engine{}

	if _, err := engine.QueryModels(context.Background(), conn); !errors.Is(err, wantErr) {
		t.Errorf("QueryModels() error = %v, want %v", err, wantErr)
	}
	if len(conn.requests) != 0 {
		t.Errorf("connection saw %d action requests after a failed environment query, want 0", len(conn.requests))
	}
}

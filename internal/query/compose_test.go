// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"testing"

	"buildsync/cli/internal/bridge/model"
	"buildsync/cli/internal/buildver"
)

// fixedSnapshots returns the same workspace view for every call and counts
// how often it was consulted.
type fixedSnapshots struct {
	ws    model.Workspace
	calls int
}

func (f *fixedSnapshots) Snapshot() model.Workspace {
	f.calls++
	return f.ws
}

func testWorkspace() model.Workspace {
	return model.Workspace{
		RootDir: "/ws",
		Projects: []model.WorkspaceProject{
			{Name: "a", Dir: "/ws/a", Open: true},
			{Name: "b", Dir: "/ws/b", Open: false},
		},
	}
}

func TestComposeSingleProjectQuery(t *testing.T) {
	act := Compose(SingleProjectQuery, buildver.Capabilities{}, nil)
	if len(act.Setup) != 0 {
		t.Errorf("Setup = %v, want empty", act.Setup)
	}
	if act.Query.Kind != model.ActionModelQuery {
		t.Errorf("Query.Kind = %v, want %v", act.Query.Kind, model.ActionModelQuery)
	}
	if act.Query.Model != model.ModelProject {
		t.Errorf("Query.Model = %v, want %v", act.Query.Model, model.ModelProject)
	}
	if act.Query.Workspace != nil {
		t.Errorf("Query.Workspace = %v, want nil", act.Query.Workspace)
	}
}

func TestComposeCompositeQuery(t *testing.T) {
	snapshots := &fixedSnapshots{ws: testWorkspace()}
	act := Compose(CompositeQuery, buildver.Capabilities{CompositeBuilds: true}, snapshots)
	if len(act.Setup) != 0 {
		t.Errorf("Setup = %v, want empty", act.Setup)
	}
	if act.Query.Kind != model.ActionCompositeModelQuery {
		t.Errorf("Query.Kind = %v, want %v", act.Query.Kind, model.ActionCompositeModelQuery)
	}
	if act.Query.Workspace != nil {
		t.Errorf("Query.Workspace = %v, want nil for plain composite", act.Query.Workspace)
	}
	if snapshots.calls != 0 {
		t.Errorf("snapshot provider consulted %d times, want 0", snapshots.calls)
	}
}

func TestComposeCompositeQueryWithRuntimeInfo(t *testing.T) {
	snapshots := &fixedSnapshots{ws: testWorkspace()}
	act := Compose(CompositeQueryWithRuntimeInfo, buildver.Capabilities{}, snapshots)
	if act.Query.Workspace == nil {
		t.Fatal("Query.Workspace = nil, want attached snapshot")
	}
	if act.Query.Workspace.RootDir != "/ws" || len(act.Query.Workspace.Projects) != 2 {
		t.Errorf("Query.Workspace = %+v, want the provider's snapshot", act.Query.Workspace)
	}
	if snapshots.calls != 1 {
		t.Errorf("snapshot provider consulted %d times, want 1", snapshots.calls)
	}
}

func TestComposeTasksThenCompositeQuery(t *testing.T) {
	act := Compose(TasksThenCompositeQuery, buildver.Capabilities{}, nil)
	if len(act.Setup) != 1 {
		t.Fatalf("Setup has %d actions, want 1", len(act.Setup))
	}
	if act.Setup[0].Kind != model.ActionRunSyncTasks {
		t.Errorf("Setup[0].Kind = %v, want %v", act.Setup[0].Kind, model.ActionRunSyncTasks)
	}
	if act.Query.Kind != model.ActionCompositeModelQuery || act.Query.Workspace != nil {
		t.Errorf("Query = %+v, want plain composite query", act.Query)
	}
}

func TestComposeTasksThenCompositeQueryWithRuntimeInfo(t *testing.T) {
	tests := []struct {
		name         string
		substitution bool
		wantSetup    int
	}{
		{name: "without substitution", substitution: false, wantSetup: 1},
		{name: "with substitution", substitution: true, wantSetup: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots := &fixedSnapshots{ws: testWorkspace()}
			caps := buildver.Capabilities{ClosedProjectSubstitution: tt.substitution}
			act := Compose(TasksThenCompositeQueryWithRuntimeInfo, caps, snapshots)

			if len(act.Setup) != tt.wantSetup {
				t.Fatalf("Setup has %d actions, want %d", len(act.Setup), tt.wantSetup)
			}
			if act.Setup[0].Kind != model.ActionRunSyncTasks {
				t.Errorf("Setup[0].Kind = %v, want %v", act.Setup[0].Kind, model.ActionRunSyncTasks)
			}
			if tt.substitution {
				sub := act.Setup[1]
				if sub.Kind != model.ActionCompositeModelQuery || sub.Model != model.ModelClosedProjectDependencies {
					t.Errorf("Setup[1] = %+v, want composite substitution query", sub)
				}
				if sub.Workspace == nil {
					t.Error("Setup[1].Workspace = nil, want attached snapshot")
				}
			}
			if act.Query.Workspace == nil {
				t.Fatal("Query.Workspace = nil, want attached snapshot")
			}
		})
	}
}

func TestComposeNilProviderPanics(t *testing.T) {
	for _, s := range []Strategy{CompositeQueryWithRuntimeInfo, TasksThenCompositeQueryWithRuntimeInfo} {
		t.Run(s.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Compose(%v, _, nil) did not panic", s)
				}
			}()
			Compose(s, buildver.Capabilities{}, nil)
		})
	}
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package buildver

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    Capabilities
	}{
		{
			name:    "ancient daemon has no capabilities",
			version: "2.6",
			want:    Capabilities{},
		},
		{
			name:    "composite builds arrive at 3.3",
			version: "3.3",
			want:    Capabilities{CompositeBuilds: true},
		},
		{
			name:    "pre sync-task daemon",
			version: "5.3.1",
			want:    Capabilities{CompositeBuilds: true},
		},
		{
			name:    "sync tasks arrive at 5.4",
			version: "5.4",
			want:    Capabilities{CompositeBuilds: true, SyncTasks: true},
		},
		{
			name:    "runtime info and deduplication arrive at 5.5",
			version: "5.5",
			want: Capabilities{
				CompositeBuilds:          true,
				SyncTasks:                true,
				WorkspaceRuntimeInfo:     true,
				ProjectNameDeduplication: true,
			},
		},
		{
			name:    "closed project substitution arrives at 5.6",
			version: "5.6",
			want: Capabilities{
				CompositeBuilds:           true,
				SyncTasks:                 true,
				WorkspaceRuntimeInfo:      true,
				ProjectNameDeduplication:  true,
				ClosedProjectSubstitution: true,
			},
		},
		{
			name:    "later versions keep everything",
			version: "8.1.2",
			want: Capabilities{
				CompositeBuilds:           true,
				SyncTasks:                 true,
				WorkspaceRuntimeInfo:      true,
				ProjectNameDeduplication:  true,
				ClosedProjectSubstitution: true,
			},
		},
		{
			name:    "unparsable version yields no capabilities",
			version: "not-a-version",
			want:    Capabilities{},
		},
		{
			name:    "empty version yields no capabilities",
			version: "",
			want:    Capabilities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.version)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.version, got, tt.want)
			}
		})
	}
}

// Capabilities are only ever added over time: a flag true at some version
// must stay true at every later version.
func TestClassifyMonotonic(t *testing.T) {
	ordered := []string{
		"2.6", "3.0", "3.3", "4.0", "4.10.3", "5.0", "5.3.1",
		"5.4", "5.4.1", "5.5", "5.5.1", "5.6", "6.0", "7.4.2", "8.1.2",
	}

	flags := func(c Capabilities) []bool {
		return []bool{
			c.CompositeBuilds,
			c.SyncTasks,
			c.WorkspaceRuntimeInfo,
			c.ProjectNameDeduplication,
			c.ClosedProjectSubstitution,
		}
	}

	prev := Classify(ordered[0])
	for _, version := range ordered[1:] {
		cur := Classify(version)
		prevFlags, curFlags := flags(prev), flags(cur)
		for i := range prevFlags {
			if prevFlags[i] && !curFlags[i] {
				t.Errorf("capability %d revoked between versions: %+v -> Classify(%q) = %+v", i, prev, version, cur)
			}
		}
		prev = cur
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("5.5"); got != Classify("5.5") {
			t.Fatalf("Classify is not deterministic: %+v", got)
		}
	}
}

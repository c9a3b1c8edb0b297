// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package buildver classifies build daemon versions into protocol capabilities.
// The wire protocol supported by the daemon grows over time; the CLI decides
// which request variant to use from a fixed set of boolean capability flags
// derived purely from the daemon-reported version string.
package buildver

import "github.com/Masterminds/semver/v3"

// Capability introduction thresholds. A capability present at a threshold
// is present at every later version; the daemon never revokes one.
var (
	minCompositeBuilds           = semver.MustParse("3.3")
	minSyncTasks                 = semver.MustParse("5.4")
	minWorkspaceRuntimeInfo      = semver.MustParse("5.5")
	minProjectNameDeduplication  = semver.MustParse("5.5")
	minClosedProjectSubstitution = semver.MustParse("5.6")
)

// Capabilities is the fixed set of protocol capability flags for one daemon
// version. All flags are false for versions that cannot be parsed or that
// predate every threshold.
type Capabilities struct {
	// CompositeBuilds: the daemon can answer one query with models for all
	// projects across included builds.
	CompositeBuilds bool
	// SyncTasks: the daemon accepts a setup-phase action that runs the
	// synchronization tasks configured in the build.
	SyncTasks bool
	// WorkspaceRuntimeInfo: the daemon accepts the client workspace view as
	// a side channel of a model query.
	WorkspaceRuntimeInfo bool
	// ProjectNameDeduplication: the daemon deduplicates colliding project
	// names itself instead of leaving it to the client.
	ProjectNameDeduplication bool
	// ClosedProjectSubstitution: the daemon can substitute dependencies on
	// closed workspace projects during the setup phase.
	ClosedProjectSubstitution bool
}

// Classify maps a daemon version string to its protocol capabilities.
// Pure and total: an unparsable version yields the zero Capabilities.
func Classify(version string) Capabilities {
	v, err := semver.NewVersion(version)
	if err != nil {
		return Capabilities{}
	}
	return Capabilities{
		CompositeBuilds:           !v.LessThan(minCompositeBuilds),
		SyncTasks:                 !v.LessThan(minSyncTasks),
		WorkspaceRuntimeInfo:      !v.LessThan(minWorkspaceRuntimeInfo),
		ProjectNameDeduplication:  !v.LessThan(minProjectNameDeduplication),
		ClosedProjectSubstitution: !v.LessThan(minClosedProjectSubstitution),
	}
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines shared data structures for bridge communication.
// It provides type definitions for build environment metadata, project
// models, workspace runtime info and phased action requests exchanged
// between the CLI and the build daemon through bridge implementations.
//
// The types in this package are designed to be transport-agnostic and
// provide a stable interface for different communication protocols.
package model

// BuildEnvironment is the result of the lightweight environment query
// performed once per connection before any model retrieval.
type BuildEnvironment struct {
	// DaemonVersion is the version string reported by the daemon.
	// It drives capability classification and nothing else.
	DaemonVersion string
}

// Project is one buildable project reported by the daemon.
type Project struct {
	Name string
	// Path is the logical path of the project within its build (":" is the root).
	Path string
	// Dir is the project's filesystem location.
	Dir string
	// Dependencies lists the logical paths of projects this one depends on.
	Dependencies []string
	// Tasks lists the task names the daemon exposes for this project.
	Tasks []string
}

// WorkspaceProject describes one client-known project sent to the daemon
// as workspace runtime info.
type WorkspaceProject struct {
	Name string
	Dir  string
	Open bool
}

// Workspace is the point-in-time view of the client workspace attached to
// runtime-info queries so the daemon can resolve cross-build references.
type Workspace struct {
	RootDir  string
	Projects []WorkspaceProject
}

// ActionKind enumerates the request kinds understood by the daemon protocol.
type ActionKind string

const (
	// ActionModelQuery fetches the root project model only.
	ActionModelQuery ActionKind = "model_query"
	// ActionCompositeModelQuery fetches models for every project reachable
	// across included builds.
	ActionCompositeModelQuery ActionKind = "composite_model_query"
	// ActionRunSyncTasks tells the daemon to run the synchronization tasks
	// configured in the build before later phases observe the project graph.
	ActionRunSyncTasks ActionKind = "run_sync_tasks"
)

// ModelType selects which model a query action retrieves.
type ModelType string

const (
	// ModelProject is the regular project model.
	ModelProject ModelType = "project"
	// ModelClosedProjectDependencies is a marker model; retrieving it makes
	// the daemon substitute dependencies on closed workspace projects with
	// their binary equivalents.
	ModelClosedProjectDependencies ModelType = "closed_project_dependencies"
)

// Action describes one unit of work sent to the daemon.
// Model is set for query kinds; Workspace is the optional runtime-info
// side channel and is nil when the strategy does not send it.
type Action struct {
	Kind      ActionKind
	Model     ModelType
	Workspace *Workspace
}

// ResultHandler receives the intermediate result of one phase. The daemon
// protocol requires every phase to produce a result, even when the caller
// discards it.
type ResultHandler func(projects []Project)

// Phase groups actions executed together within a request. All actions of
// a phase complete before the next phase starts.
type Phase struct {
	Actions []Action
	Handle  ResultHandler
}

// Request is a phased action sequence executed in a single daemon round trip.
type Request struct {
	Phases []Phase
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge defines interfaces and implementations for connecting the
// CLI to the build daemon. It provides abstractions for different transport
// mechanisms (gRPC, in-process test doubles) while maintaining a consistent
// interface for environment queries and phased action execution.
//
// The package enables pluggable transport implementations while providing a
// unified API for the CLI to interact with the daemon's model protocol.
package bridge

import (
	"context"

	"buildsync/cli/internal/bridge/grpcclient"
	"buildsync/cli/internal/bridge/model"
)

// Connection is one open session with the build daemon.
//
// A connection supports at most one in-flight call at a time; callers
// serialize access themselves. The caller that opened the connection is
// responsible for closing it.
type Connection interface {
	// Environment performs the lightweight environment query that reports
	// the daemon version.
	Environment(ctx context.Context) (model.BuildEnvironment, error)
	// Run executes a phased action request in a single daemon round trip.
	// Phases run in the order given; all actions of a phase complete before
	// the next phase starts, and each phase's result is delivered to its
	// handler before Run returns.
	Run(ctx context.Context, req model.Request) error
	// Close tears down the transport.
	Close() error
}

// Dial opens a gRPC-backed connection to the daemon at addr.
func Dial(ctx context.Context, addr string) (Connection, error) {
	c := &grpcclient.Client{}
	if err := c.Connect(ctx, addr); err != nil {
		return nil, err
	}
	return c, nil
}

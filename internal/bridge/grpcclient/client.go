// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package grpcclient provides a gRPC-backed implementation of the bridge
// Connection interface. It speaks the daemon's model protocol over a unary
// RPC surface, encoding phased action requests as structured payloads and
// decoding per-phase results back into the internal model types.
//
// The package manages connection lifecycle and protocol conversion between
// the internal model types and the daemon's wire format. The wire format is
// treated as opaque structured data beyond the phase/action/result shape.
package grpcclient

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"buildsync/cli/internal/bridge/model"
	cerrors "buildsync/cli/internal/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	environmentMethod = "/buildtool.v1.ModelService/Environment"
	runActionMethod   = "/buildtool.v1.ModelService/RunAction"

	// defaultPort is used when the daemon address carries no port.
	defaultPort = "8553"
)

// Client implements the bridge Connection over a gRPC channel to the daemon.
type Client struct {
	conn *grpc.ClientConn
}

// Connect dials the daemon's gRPC endpoint.
func (c *Client) Connect(ctx context.Context, addr string) error {
	// Derive SNI and ensure default port if missing
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	target := addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		target = net.JoinHostPort(addr, defaultPort)
	}

	tlsCfg := &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	creds := credentials.NewTLS(tlsCfg)
	dctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dctx, target, grpc.WithTransportCredentials(creds), grpc.WithBlock())
	if err != nil {
		return cerrors.Wrap(cerrors.ConnectFailed, "dialing build daemon at "+target, err)
	}
	c.conn = conn
	return nil
}

// Close tears down the gRPC channel.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Environment performs the lightweight environment query.
func (c *Client) Environment(ctx context.Context) (model.BuildEnvironment, error) {
	if c.conn == nil {
		return model.BuildEnvironment{}, cerrors.New(cerrors.ConnectFailed, "not connected to build daemon")
	}
	req := &structpb.Struct{}
	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, environmentMethod, req, resp); err != nil {
		return model.BuildEnvironment{}, cerrors.Wrap(cerrors.EnvironmentQueryFailed, "querying daemon environment", translateStatus(err))
	}
	return model.BuildEnvironment{
		DaemonVersion: resp.GetFields()["daemon_version"].GetStringValue(),
	}, nil
}

// Run executes a phased action request in a single round trip. The daemon
// answers with one result per phase; each result is dispatched to the
// matching phase handler in order.
func (c *Client) Run(ctx context.Context, req model.Request) error {
	if c.conn == nil {
		return cerrors.New(cerrors.ConnectFailed, "not connected to build daemon")
	}
	payload, err := encodeRequest(req)
	if err != nil {
		return cerrors.Wrap(cerrors.RemoteActionFailed, "encoding action request", err)
	}
	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, runActionMethod, payload, resp); err != nil {
		return cerrors.Wrap(cerrors.RemoteActionFailed, "daemon action failed", translateStatus(err))
	}
	dispatchResults(req, resp)
	return nil
}

// translateStatus rewrites daemon-side rejections into transport-neutral
// cause shapes. InvalidArgument carries the daemon's message verbatim so
// callers can recognize known failure signatures; everything else passes
// through unchanged.
func translateStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.InvalidArgument {
		return &cerrors.InvalidArgumentError{Msg: st.Message()}
	}
	return err
}

func encodeRequest(req model.Request) (*structpb.Struct, error) {
	phases := make([]any, 0, len(req.Phases))
	for _, ph := range req.Phases {
		actions := make([]any, 0, len(ph.Actions))
		for _, a := range ph.Actions {
			actions = append(actions, encodeAction(a))
		}
		phases = append(phases, map[string]any{"actions": actions})
	}
	return structpb.NewStruct(map[string]any{"phases": phases})
}

func encodeAction(a model.Action) map[string]any {
	out := map[string]any{"kind": string(a.Kind)}
	if a.Model != "" {
		out["model"] = string(a.Model)
	}
	if a.Workspace != nil {
		projects := make([]any, 0, len(a.Workspace.Projects))
		for _, p := range a.Workspace.Projects {
			projects = append(projects, map[string]any{
				"name": p.Name,
				"dir":  p.Dir,
				"open": p.Open,
			})
		}
		out["workspace"] = map[string]any{
			"root_dir": a.Workspace.RootDir,
			"projects": projects,
		}
	}
	return out
}

// dispatchResults delivers the daemon's per-phase results to the request's
// handlers in phase order. Missing phases or handlers are skipped; the
// daemon guarantees one result per phase for well-formed requests.
func dispatchResults(req model.Request, resp *structpb.Struct) {
	results := resp.GetFields()["phases"].GetListValue().GetValues()
	for i, ph := range req.Phases {
		if ph.Handle == nil {
			continue
		}
		if i >= len(results) {
			ph.Handle(nil)
			continue
		}
		ph.Handle(decodeProjects(results[i].GetStructValue()))
	}
}

func decodeProjects(phase *structpb.Struct) []model.Project {
	values := phase.GetFields()["projects"].GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	out := make([]model.Project, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue().GetFields()
		out = append(out, model.Project{
			Name:         fields["name"].GetStringValue(),
			Path:         fields["path"].GetStringValue(),
			Dir:          fields["dir"].GetStringValue(),
			Dependencies: decodeStrings(fields["dependencies"]),
			Tasks:        decodeStrings(fields["tasks"]),
		})
	}
	return out
}

func decodeStrings(v *structpb.Value) []string {
	values := v.GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, s := range values {
		out = append(out, s.GetStringValue())
	}
	return out
}

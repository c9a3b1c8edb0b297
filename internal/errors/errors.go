// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectFailed indicates the daemon connection could not be established.
	ConnectFailed Kind = "connect_failed"
	// EnvironmentQueryFailed indicates the daemon environment query failed.
	EnvironmentQueryFailed Kind = "environment_query_failed"
	// RemoteActionFailed indicates the daemon rejected or aborted a phased
	// action request. The underlying daemon cause is preserved in Err.
	RemoteActionFailed Kind = "remote_action_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// InvalidArgumentError is a daemon-side cause shape: the daemon rejected an
// argument of the request. It carries the daemon's message verbatim.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return e.Msg }

// DuplicateProjectNameError reports that the workspace already contains a
// project with the given name. Depending on daemon version this condition
// is detected locally or remotely; both paths surface this one type.
type DuplicateProjectNameError struct {
	Name string
	// Err is the original remote failure when detection happened in the
	// daemon, nil when detection happened locally.
	Err error
}

func (e *DuplicateProjectNameError) Error() string {
	return fmt.Sprintf("A project with the name %s already exists.", e.Name)
}

func (e *DuplicateProjectNameError) Unwrap() error { return e.Err }

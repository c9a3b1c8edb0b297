// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"errors"
	"strings"

	cerrors "buildsync/cli/internal/errors"
)

// duplicateRootElementMarker is the daemon-side message prefix emitted when
// the daemon's own project name deduplication fails. Older daemons leave
// collision detection to the client, which raises the same domain error
// locally; Reinterpret keeps both paths indistinguishable for callers.
const duplicateRootElementMarker = "Duplicate root element "

// Reinterpret inspects a remote action failure for the duplicate project
// name signature and promotes it to DuplicateProjectNameError. Any other
// error (or a failure without the recognizable cause) is returned
// unchanged, cause chain intact.
func Reinterpret(err error) error {
	if err == nil {
		return nil
	}
	var actionErr *cerrors.E
	if !errors.As(err, &actionErr) || actionErr.Kind != cerrors.RemoteActionFailed {
		return err
	}
	var cause *cerrors.InvalidArgumentError
	if !errors.As(actionErr.Err, &cause) {
		return err
	}
	if !strings.HasPrefix(cause.Msg, duplicateRootElementMarker) {
		return err
	}
	return &cerrors.DuplicateProjectNameError{
		Name: strings.TrimPrefix(cause.Msg, duplicateRootElementMarker),
		Err:  err,
	}
}

// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"buildsync/cli/internal/bridge/model"
	cerrors "buildsync/cli/internal/errors"
)

// EnsureUniqueNames checks a retrieved model collection for colliding
// project names. Callers use it when the daemon predates remote name
// deduplication; the failure shape is identical to the one Reinterpret
// produces for remote detection, so both paths surface one error type.
func EnsureUniqueNames(projects []model.Project) error {
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.Name]; dup {
			return &cerrors.DuplicateProjectNameError{Name: p.Name}
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

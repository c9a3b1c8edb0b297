// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"errors"
	"testing"

	"buildsync/cli/internal/bridge/model"
	cerrors "buildsync/cli/internal/errors"
)

func TestEnsureUniqueNames(t *testing.T) {
	tests := []struct {
		name     string
		projects []model.Project
		wantDup  string
	}{
		{
			name: "empty collection",
		},
		{
			name:     "unique names",
			projects: []model.Project{{Name: "app"}, {Name: "lib"}},
		},
		{
			name:     "colliding names",
			projects: []model.Project{{Name: "app"}, {Name: "lib"}, {Name: "app"}},
			wantDup:  "app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureUniqueNames(tt.projects)
			if tt.wantDup == "" {
				if err != nil {
					t.Errorf("EnsureUniqueNames() = %v, want nil", err)
				}
				return
			}
			var dup *cerrors.DuplicateProjectNameError
			if !errors.As(err, &dup) {
				t.Fatalf("EnsureUniqueNames() = %v, want DuplicateProjectNameError", err)
			}
			if dup.Name != tt.wantDup {
				t.Errorf("duplicate name = %q, want %q", dup.Name, tt.wantDup)
			}
		})
	}
}

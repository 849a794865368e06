package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"quire/internal/adapters/filesystem"
)

func TestPlanRenamesCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dirs    []string
		width   int
		wantErr bool
		errMsg  string
	}{
		{
			name:    "derived width",
			dirs:    []string{"/lib/novel"},
			width:   0,
			wantErr: false,
		},
		{
			name:    "explicit width",
			dirs:    []string{"/lib/novel"},
			width:   4,
			wantErr: false,
		},
		{
			name:    "negative width",
			dirs:    []string{"/lib/novel"},
			width:   -1,
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name:    "blank dir",
			dirs:    []string{"  "},
			width:   0,
			wantErr: true,
			errMsg:  "dir is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &PlanRenamesCommand{Dirs: tt.dirs, Width: tt.width}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestPlanRenamesCommand_Execute(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	novel := filepath.Join(repo.Root(), "novel")
	cmd := NewPlanRenamesCommand(repo, []string{novel}, 0)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(result.Plans))
	}
	plan := result.Plans[0]
	if plan.Dir != novel || plan.Width != 2 {
		t.Errorf("expected plan for %s at width 2, got %s at %d", novel, plan.Dir, plan.Width)
	}

	// img10.jpg already has the derived width, so only two renames
	want := map[string]string{
		filepath.Join(novel, "img1.jpg"): filepath.Join(novel, "img01.jpg"),
		filepath.Join(novel, "img2.jpg"): filepath.Join(novel, "img02.jpg"),
	}
	if len(result.Mapping) != len(want) {
		t.Fatalf("expected %d renames, got %d: %+v", len(want), len(result.Mapping), result.Mapping)
	}
	for _, ren := range result.Mapping {
		if want[ren.Source] != ren.Dest {
			t.Errorf("unexpected rename %s -> %s", ren.Source, ren.Dest)
		}
	}
}

func TestPlanRenamesCommand_Execute_WidthOverride(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	novel := filepath.Join(repo.Root(), "novel")
	cmd := NewPlanRenamesCommand(repo, []string{novel}, 3)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// At width 3 even img10.jpg moves
	if len(result.Mapping) != 3 {
		t.Fatalf("expected 3 renames, got %d: %+v", len(result.Mapping), result.Mapping)
	}
	found := false
	for _, ren := range result.Mapping {
		if ren.Source == filepath.Join(novel, "img10.jpg") && ren.Dest == filepath.Join(novel, "img010.jpg") {
			found = true
		}
	}
	if !found {
		t.Error("expected img10.jpg -> img010.jpg in the mapping")
	}
}

func TestPlanRenamesCommand_Execute_SkipsCleanDirs(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	cmd := NewPlanRenamesCommand(repo, []string{
		filepath.Join(repo.Root(), "padded"),
		filepath.Join(repo.Root(), "empty"),
	}, 0)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Plans) != 0 || len(result.Mapping) != 0 {
		t.Errorf("expected an empty plan, got %+v", result)
	}
}

func TestPlanRenamesCommand_Execute_CombinesDirs(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	writeLeaf(t, filepath.Join(root, "second"), "pg7.png", "pg8.png", "pg9.png", "pg10.png")

	repo := filesystem.NewRepository(root)
	cmd := NewPlanRenamesCommand(repo, []string{
		filepath.Join(repo.Root(), "novel"),
		filepath.Join(repo.Root(), "second"),
	}, 0)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(result.Plans))
	}
	// novel renames two files, second renames three (pg10.png stays)
	if len(result.Mapping) != 5 {
		t.Errorf("expected 5 combined renames, got %d", len(result.Mapping))
	}
}

func TestPlanRenamesCommand_Execute_MissingDir(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	cmd := NewPlanRenamesCommand(repo, []string{filepath.Join(repo.Root(), "nope")}, 0)

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected Execute to fail on a missing directory")
	}
}

package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quire/internal/adapters/filesystem"
)

// setupRoot builds a small library with one leaf that needs padding
// ("novel"), one already padded, one below any sane threshold and one
// with no files at all.
func setupRoot(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "quire-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	writeLeaf(t, filepath.Join(tmpDir, "novel"), "img1.jpg", "img2.jpg", "img10.jpg")
	writeLeaf(t, filepath.Join(tmpDir, "padded"), "pg01.png", "pg02.png")
	writeLeaf(t, filepath.Join(tmpDir, "single"), "only1.jpg")
	writeLeaf(t, filepath.Join(tmpDir, "empty"))

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

func writeLeaf(t *testing.T, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

func TestScanCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		minFiles int
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "default threshold",
			minFiles: 2,
			wantErr:  false,
		},
		{
			name:     "threshold of one",
			minFiles: 1,
			wantErr:  false,
		},
		{
			name:     "zero threshold",
			minFiles: 0,
			wantErr:  true,
			errMsg:   "must be at least 1",
		},
		{
			name:     "negative threshold",
			minFiles: -3,
			wantErr:  true,
			errMsg:   "must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ScanCommand{MinFiles: tt.minFiles}
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

func TestScanCommand_Execute(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	cmd := NewScanCommand(repo, 2)

	reports, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d: %+v", len(reports), reports)
	}

	rep := reports[0]
	if rep.Dir != filepath.Join(repo.Root(), "novel") {
		t.Errorf("expected report for novel, got %s", rep.Dir)
	}
	if rep.Count != 3 || rep.Min != 1 || rep.Max != 10 {
		t.Errorf("expected count 3 over 1-10, got %d over %d-%d", rep.Count, rep.Min, rep.Max)
	}
	if rep.DesiredWidth != 2 {
		t.Errorf("expected desired width 2, got %d", rep.DesiredWidth)
	}

	wantLex := []string{"img1.jpg", "img10.jpg", "img2.jpg"}
	wantNumeric := []string{"img1.jpg", "img2.jpg", "img10.jpg"}
	for i := range wantLex {
		if rep.LexSample[i] != wantLex[i] {
			t.Errorf("lex sample %d: expected %s, got %s", i, wantLex[i], rep.LexSample[i])
		}
		if rep.NumericSample[i] != wantNumeric[i] {
			t.Errorf("numeric sample %d: expected %s, got %s", i, wantNumeric[i], rep.NumericSample[i])
		}
	}
}

func TestScanCommand_Execute_NoFindings(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "quire-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeLeaf(t, filepath.Join(tmpDir, "padded"), "pg01.png", "pg02.png")

	repo := filesystem.NewRepository(tmpDir)
	cmd := NewScanCommand(repo, 2)

	reports, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if reports == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %+v", reports)
	}
}

func TestScanCommand_Execute_MissingRoot(t *testing.T) {
	repo := filesystem.NewRepository(filepath.Join(os.TempDir(), "quire-does-not-exist"))
	cmd := NewScanCommand(repo, 2)

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected Execute to fail on a missing root")
	}
}

func TestScanCommand_Execute_InvalidThreshold(t *testing.T) {
	root, cleanup := setupRoot(t)
	defer cleanup()

	repo := filesystem.NewRepository(root)
	cmd := NewScanCommand(repo, 0)

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected Execute to reject a zero threshold")
	}
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"quire/internal/domain"
	"quire/internal/ports"
)

// ArchiveTarget is one leaf directory selected for archiving and what
// happened to it
type ArchiveTarget struct {
	Dir     string
	DestDir string
	// PlannedPath is the archive path before any collision adjustment,
	// for display.
	PlannedPath string
	Files       []domain.FileEntry
	TotalBytes  int64
	CreatedPath string // set once the archive was written
	Err         error  // set when writing failed; the batch continues
}

// ArchiveLeavesResult contains the result of an archive run
type ArchiveLeavesResult struct {
	Targets []ArchiveTarget
	Created int
}

// ArchiveLeavesCommand packs the direct files of every leaf directory
// under the root into a .cbz container
type ArchiveLeavesCommand struct {
	repo   ports.LibraryRepository
	writer ports.ArchiveWriter
	// Output is the destination directory for every archive; empty
	// means each leaf's parent.
	Output       string
	IncludeEmpty bool
	DryRun       bool
}

// NewArchiveLeavesCommand creates a new ArchiveLeavesCommand
func NewArchiveLeavesCommand(repo ports.LibraryRepository, writer ports.ArchiveWriter, output string, includeEmpty, dryRun bool) *ArchiveLeavesCommand {
	return &ArchiveLeavesCommand{
		repo:         repo,
		writer:       writer,
		Output:       output,
		IncludeEmpty: includeEmpty,
		DryRun:       dryRun,
	}
}

// Execute runs the archive batch. A failure on one directory is
// recorded on its target and the run moves on.
func (c *ArchiveLeavesCommand) Execute(ctx context.Context) (*ArchiveLeavesResult, error) {
	leafs, err := c.repo.FindLeafDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", c.repo.Root(), err)
	}

	result := &ArchiveLeavesResult{}
	for _, dir := range leafs {
		files, err := c.repo.ListFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		if len(files) == 0 && !c.IncludeEmpty {
			continue
		}

		destDir := c.Output
		if destDir == "" {
			destDir = filepath.Dir(dir)
		}

		target := ArchiveTarget{
			Dir:         dir,
			DestDir:     destDir,
			PlannedPath: filepath.Join(destDir, domain.ArchiveName(dir)),
			Files:       files,
		}
		for _, f := range files {
			target.TotalBytes += f.Size
		}

		if !c.DryRun {
			created, err := c.writer.WriteArchive(dir, files, destDir)
			if err != nil {
				target.Err = err
			} else {
				target.CreatedPath = created
				result.Created++
			}
		}

		result.Targets = append(result.Targets, target)
	}

	return result, nil
}

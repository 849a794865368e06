package commands

import (
	"context"
	"fmt"

	"quire/internal/application"
	"quire/internal/domain"
	"quire/internal/ports"
)

// ScanCommand walks the library root and analyzes every leaf directory
// for numeric sequences that need zero-padding
type ScanCommand struct {
	repo     ports.LibraryRepository
	MinFiles int
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(repo ports.LibraryRepository, minFiles int) *ScanCommand {
	return &ScanCommand{
		repo:     repo,
		MinFiles: minFiles,
	}
}

// Validate checks the scan parameters
func (c *ScanCommand) Validate() error {
	return application.ValidateMin("min-files", c.MinFiles, 1)
}

// Execute runs the scan. The returned slice is never nil, so report
// consumers can marshal an empty run as [].
func (c *ScanCommand) Execute(ctx context.Context) ([]domain.SequenceReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	leafs, err := c.repo.FindLeafDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", c.repo.Root(), err)
	}

	reports := make([]domain.SequenceReport, 0)
	for _, dir := range leafs {
		files, err := c.repo.ListFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		if report := domain.AnalyzeSequence(dir, files, c.MinFiles); report != nil {
			reports = append(reports, *report)
		}
	}

	return reports, nil
}

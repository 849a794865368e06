package commands

import (
	"context"
	"fmt"

	"quire/internal/application"
	"quire/internal/domain"
	"quire/internal/ports"
)

// PlanResult contains the rename plans for a set of directories
type PlanResult struct {
	// Plans holds one entry per directory that still has something to
	// rename, in input order.
	Plans []domain.DirectoryPlan
	// Mapping is the combined batch across every planned directory.
	Mapping domain.Mapping
}

// PlanRenamesCommand re-lists each directory and computes its
// padded-name mapping. Listing happens at plan time, not scan time, so
// the mapping reflects the directory as it is now.
type PlanRenamesCommand struct {
	repo  ports.LibraryRepository
	Dirs  []string
	Width int // 0 derives the width from each directory's largest value
}

// NewPlanRenamesCommand creates a new PlanRenamesCommand
func NewPlanRenamesCommand(repo ports.LibraryRepository, dirs []string, width int) *PlanRenamesCommand {
	return &PlanRenamesCommand{
		repo:  repo,
		Dirs:  dirs,
		Width: width,
	}
}

// Validate checks the plan parameters
func (c *PlanRenamesCommand) Validate() error {
	if err := application.ValidateNonNegative("width", c.Width); err != nil {
		return err
	}
	for _, dir := range c.Dirs {
		if err := application.ValidateRequired("dir", dir); err != nil {
			return err
		}
	}
	return nil
}

// Execute builds the plans
func (c *PlanRenamesCommand) Execute(ctx context.Context) (*PlanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &PlanResult{}
	for _, dir := range c.Dirs {
		files, err := c.repo.ListFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		plan := domain.PlanDirectory(dir, files, c.Width)
		if plan == nil || len(plan.Mapping) == 0 {
			continue
		}
		result.Plans = append(result.Plans, *plan)
		result.Mapping = append(result.Mapping, plan.Mapping...)
	}

	return result, nil
}

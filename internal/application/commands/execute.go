package commands

import (
	"context"

	"quire/internal/domain"
	"quire/internal/ports"
)

// ExecuteRenamesCommand applies a rename mapping through the repository
type ExecuteRenamesCommand struct {
	repo    ports.LibraryRepository
	Mapping domain.Mapping
	DryRun  bool
	Force   bool
}

// NewExecuteRenamesCommand creates a new ExecuteRenamesCommand
func NewExecuteRenamesCommand(repo ports.LibraryRepository, mapping domain.Mapping, dryRun, force bool) *ExecuteRenamesCommand {
	return &ExecuteRenamesCommand{
		repo:    repo,
		Mapping: mapping,
		DryRun:  dryRun,
		Force:   force,
	}
}

// Execute runs the batch. Conflicts come back as *domain.ConflictError
// with nothing touched; a mid-batch failure is inside the outcome.
func (c *ExecuteRenamesCommand) Execute(ctx context.Context) (*domain.RenameOutcome, error) {
	return c.repo.ExecuteRenames(c.Mapping, c.DryRun, c.Force)
}

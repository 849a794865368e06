package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"quire/internal/domain"
)

// ExecuteRenames validates a mapping and applies it in two phases:
// every source moves aside to a random temporary name, then every
// temporary moves onto its destination. A failure stops the batch
// where it is; completed renames and remaining temporaries stay on
// disk, nothing is rolled back.
func (r *Repository) ExecuteRenames(mapping domain.Mapping, dryRun, force bool) (*domain.RenameOutcome, error) {
	if dest, ok := mapping.DuplicateDest(); ok {
		return nil, &domain.ConflictError{
			Dest:    dest,
			Message: "Duplicate destination filenames detected; aborting to avoid data loss.",
		}
	}

	sources := mapping.Sources()
	if !force {
		for _, ren := range mapping {
			if _, err := os.Stat(ren.Dest); err == nil {
				if _, own := sources[ren.Dest]; !own {
					return nil, &domain.ConflictError{
						Dest:    ren.Dest,
						Message: fmt.Sprintf("Destination %s already exists and --force not given", ren.Dest),
					}
				}
			}
		}
	}

	if dryRun {
		return &domain.RenameOutcome{DryRun: true}, nil
	}

	outcome := &domain.RenameOutcome{}
	fail := func(err error) (*domain.RenameOutcome, error) {
		outcome.Failed = len(mapping) - outcome.Succeeded
		outcome.FailureCause = err
		return outcome, nil
	}

	// Phase 1: stage every source under a collision-proof name.
	temps := make([]string, len(mapping))
	for i, ren := range mapping {
		temp := fmt.Sprintf("%s.renametmp-%x", ren.Source, uuid.New())
		if err := os.Rename(ren.Source, temp); err != nil {
			return fail(fmt.Errorf("failed to stage %s: %w", ren.Source, err))
		}
		temps[i] = temp
	}

	// Phase 2: land every temporary on its destination. Destinations
	// are rechecked here because phase 1 may race with other writers.
	for i, ren := range mapping {
		if !force {
			if _, err := os.Stat(ren.Dest); err == nil {
				if _, own := sources[ren.Dest]; !own {
					return fail(&domain.ConflictError{
						Dest:    ren.Dest,
						Message: fmt.Sprintf("Destination %s exists; aborting", ren.Dest),
					})
				}
			}
		}
		if err := os.MkdirAll(filepath.Dir(ren.Dest), 0755); err != nil {
			return fail(fmt.Errorf("failed to create %s: %w", filepath.Dir(ren.Dest), err))
		}
		if err := os.Rename(temps[i], ren.Dest); err != nil {
			return fail(fmt.Errorf("failed to move %s to %s: %w", temps[i], ren.Dest, err))
		}
		outcome.Succeeded++
	}

	return outcome, nil
}

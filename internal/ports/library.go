package ports

import "quire/internal/domain"

// LibraryRepository defines filesystem access to the tree under scan.
// Implementations bind one root at construction time.
type LibraryRepository interface {
	// Root returns the absolute root the repository is bound to.
	Root() string

	// Discovery
	FindLeafDirs() ([]string, error)
	IsLeafDir(path string) (bool, error)

	// ListFiles returns the direct, non-hidden files of dir sorted by
	// name. Subdirectories are never included.
	ListFiles(dir string) ([]domain.FileEntry, error)

	// ExecuteRenames validates and applies a rename batch. Conflicts
	// surface as *domain.ConflictError before any mutation; an I/O
	// failure mid-batch is reported inside the outcome, not as an
	// error, because the completed renames stand.
	ExecuteRenames(mapping domain.Mapping, dryRun, force bool) (*domain.RenameOutcome, error)
}

package domain

import "errors"

// ErrConflict marks rename-safety violations detected before mutation.
var ErrConflict = errors.New("rename conflict")

// Rename is one source -> destination pair. Both paths are absolute.
type Rename struct {
	Source string
	Dest   string
}

// Mapping is an ordered rename batch, possibly spanning directories.
// Destinations must be pairwise distinct; a destination already on disk
// that is not one of the mapping's own sources is a conflict unless the
// caller forces overwrite.
type Mapping []Rename

// Sources returns the set of source paths.
func (m Mapping) Sources() map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for _, r := range m {
		set[r.Source] = struct{}{}
	}
	return set
}

// DuplicateDest returns the first destination named by two renames.
func (m Mapping) DuplicateDest() (string, bool) {
	seen := make(map[string]struct{}, len(m))
	for _, r := range m {
		if _, ok := seen[r.Dest]; ok {
			return r.Dest, true
		}
		seen[r.Dest] = struct{}{}
	}
	return "", false
}

// ConflictError reports why a mapping was rejected: a duplicate
// destination, or an existing file that is not among the mapping's own
// sources and would be overwritten without force.
type ConflictError struct {
	Dest    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is lets callers match any conflict via ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// RenameOutcome is the result of executing a mapping. A batch halted by
// an I/O failure carries the counts so far plus the cause; conflicts are
// never an outcome, they surface as *ConflictError before any mutation.
type RenameOutcome struct {
	DryRun       bool
	Succeeded    int
	Failed       int
	FailureCause error
}

// Ok reports whether every planned rename completed.
func (o *RenameOutcome) Ok() bool {
	return o.Failed == 0 && o.FailureCause == nil
}

package application

import "quire/internal/domain"

// Re-export domain types for use by adapters
type (
	FileEntry      = domain.FileEntry
	SequenceReport = domain.SequenceReport
	DirectoryPlan  = domain.DirectoryPlan
	Mapping        = domain.Mapping
	RenameOutcome  = domain.RenameOutcome
)

// PaddedName returns name with its last digit run zero-padded to width
func PaddedName(name string, width int) string {
	return domain.PaddedName(name, width)
}

// DigitWidth returns the decimal digit count of n
func DigitWidth(n int) int {
	return domain.DigitWidth(n)
}

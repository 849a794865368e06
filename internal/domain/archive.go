package domain

import "path/filepath"

// ArchiveExt is the container suffix for leaf-directory archives.
const ArchiveExt = ".cbz"

// ArchiveName returns the archive filename for a source directory,
// falling back to "root" when the path has no usable base name.
func ArchiveName(srcDir string) string {
	base := filepath.Base(filepath.Clean(srcDir))
	if base == "/" || base == "." || base == "" {
		base = "root"
	}
	return base + ArchiveExt
}

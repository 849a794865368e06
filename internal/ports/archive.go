package ports

import "quire/internal/domain"

// ArchiveWriter packs one directory's files into a container file.
type ArchiveWriter interface {
	// WriteArchive creates an archive of files under destDir, named
	// after srcDir and adjusted to avoid clobbering existing names.
	// It returns the path of the archive it created.
	WriteArchive(srcDir string, files []domain.FileEntry, destDir string) (string, error)
}

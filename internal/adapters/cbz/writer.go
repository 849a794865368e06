package cbz

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quire/internal/domain"
)

// Writer packs leaf directory listings into .cbz archives on disk.
type Writer struct{}

// NewWriter creates a Writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteArchive packs files into an archive named after srcDir inside
// destDir and returns the path it wrote. Taken names get a _1, _2
// suffix appended instead of being overwritten. Members are stored
// deflated under their base names, in the order given.
func (w *Writer) WriteArchive(srcDir string, files []domain.FileEntry, destDir string) (string, error) {
	archivePath := nextFreePath(destDir, domain.ArchiveName(srcDir))

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		member, err := zw.Create(file.Name)
		if err != nil {
			return "", fmt.Errorf("failed to add %s: %w", file.Name, err)
		}
		src, err := os.Open(file.Path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", file.Path, err)
		}
		if _, err := io.Copy(member, src); err != nil {
			src.Close()
			return "", fmt.Errorf("failed to write %s: %w", file.Name, err)
		}
		src.Close()
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", archivePath, err)
	}

	return archivePath, nil
}

// nextFreePath returns destDir/name, or the first destDir/base_N.cbz
// variant that does not exist yet.
func nextFreePath(destDir, name string) string {
	base := strings.TrimSuffix(name, domain.ArchiveExt)
	candidate := filepath.Join(destDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", base, counter, domain.ArchiveExt))
	}
}

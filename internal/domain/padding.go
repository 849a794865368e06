package domain

import (
	"path/filepath"
	"strings"
)

// ZeroPad left-pads digit text with zeros to width. Text already at or
// beyond width comes back unchanged; a longer token is never truncated.
func ZeroPad(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat("0", width-len(text)) + text
}

// PaddedName returns name with the last digit run of its stem zero-padded
// to width, substituted in place. Any non-numeric prefix and suffix of
// the stem and the extension are preserved. Names without a digit run
// come back unchanged.
func PaddedName(name string, width int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	runs := digitRunRegex.FindAllStringIndex(stem, -1)
	if len(runs) == 0 {
		return name
	}
	last := runs[len(runs)-1]
	return stem[:last[0]] + ZeroPad(stem[last[0]:last[1]], width) + stem[last[1]:] + ext
}

// DirectoryPlan is the rename plan for one directory.
type DirectoryPlan struct {
	Dir     string
	Width   int
	Mapping Mapping
}

// PlanDirectory builds the rename plan for dir from a fresh file listing.
// widthOverride > 0 forces the padding width; otherwise the width follows
// the largest numeric value present. Files without a token and files
// whose padded name equals their current name are omitted. Directories
// with no numbered files produce a nil plan.
func PlanDirectory(dir string, files []FileEntry, widthOverride int) *DirectoryPlan {
	numbered := numberFiles(files)
	if len(numbered) == 0 {
		return nil
	}

	width := widthOverride
	if width <= 0 {
		maxVal := numbered[0].Token.Value
		for _, nf := range numbered {
			if nf.Token.Value > maxVal {
				maxVal = nf.Token.Value
			}
		}
		width = DigitWidth(maxVal)
	}

	var mapping Mapping
	for _, nf := range numbered {
		target := PaddedName(nf.File.Name, width)
		if target == nf.File.Name {
			continue
		}
		mapping = append(mapping, Rename{
			Source: nf.File.Path,
			Dest:   filepath.Join(dir, target),
		})
	}

	return &DirectoryPlan{Dir: dir, Width: width, Mapping: mapping}
}

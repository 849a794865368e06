package domain

import (
	"slices"
	"strings"
)

// SampleLimit caps the ordering samples carried by a SequenceReport.
const SampleLimit = 10

// FileEntry is one direct file of a directory. Listings exclude hidden
// (dot-prefixed) names.
type FileEntry struct {
	Name string
	Path string
	Size int64
}

// SortFiles orders entries lexicographically by name.
func SortFiles(files []FileEntry) {
	slices.SortFunc(files, func(a, b FileEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// NumberedFile pairs a file with the token extracted from its stem.
type NumberedFile struct {
	File  FileEntry
	Token NumericToken
}

// numberFiles extracts tokens in listing order, dropping files without one.
func numberFiles(files []FileEntry) []NumberedFile {
	numbered := make([]NumberedFile, 0, len(files))
	for _, f := range files {
		token, ok := ExtractToken(Stem(f.Name))
		if !ok {
			continue
		}
		numbered = append(numbered, NumberedFile{File: f, Token: token})
	}
	return numbered
}

// SequenceReport describes one directory whose numbered files sort
// differently by name than by numeric value. JSON tags define the
// machine-readable report format.
type SequenceReport struct {
	Dir           string   `json:"dir"`
	Count         int      `json:"count"`
	Min           int      `json:"min"`
	Max           int      `json:"max"`
	DesiredWidth  int      `json:"desired_width"`
	TokenWidths   []int    `json:"token_lengths_sample"`
	LexSample     []string `json:"lex_order_sample"`
	NumericSample []string `json:"numeric_order_sample"`
}

// AnalyzeSequence inspects the direct files of dir and reports when their
// numeric sequence needs zero-padding. It returns nil when fewer than
// minFiles files (or numbered files) are present, when the distinct
// values are not exactly the contiguous range [min, max], when name
// order already matches numeric order, or when every token already has
// the desired width. Equal values are a data anomaly, not an error; the
// name breaks the tie so the comparison stays deterministic.
func AnalyzeSequence(dir string, files []FileEntry, minFiles int) *SequenceReport {
	if len(files) < minFiles {
		return nil
	}
	numbered := numberFiles(files)
	if len(numbered) < minFiles {
		return nil
	}

	minVal, maxVal := numbered[0].Token.Value, numbered[0].Token.Value
	distinct := make(map[int]struct{}, len(numbered))
	for _, nf := range numbered {
		v := nf.Token.Value
		distinct[v] = struct{}{}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(distinct) != maxVal-minVal+1 {
		return nil
	}

	lex := slices.Clone(numbered)
	slices.SortFunc(lex, func(a, b NumberedFile) int {
		return strings.Compare(a.File.Name, b.File.Name)
	})
	numeric := slices.Clone(numbered)
	slices.SortFunc(numeric, func(a, b NumberedFile) int {
		if a.Token.Value != b.Token.Value {
			return a.Token.Value - b.Token.Value
		}
		return strings.Compare(a.File.Name, b.File.Name)
	})

	lexNames := names(lex)
	numericNames := names(numeric)

	width := DigitWidth(maxVal)
	fullyPadded := true
	widthSet := make(map[int]struct{})
	for _, nf := range numbered {
		w := nf.Token.Width()
		widthSet[w] = struct{}{}
		if w != width {
			fullyPadded = false
		}
	}

	if slices.Equal(lexNames, numericNames) || fullyPadded {
		return nil
	}

	widths := make([]int, 0, len(widthSet))
	for w := range widthSet {
		widths = append(widths, w)
	}
	slices.Sort(widths)

	return &SequenceReport{
		Dir:           dir,
		Count:         len(numbered),
		Min:           minVal,
		Max:           maxVal,
		DesiredWidth:  width,
		TokenWidths:   widths,
		LexSample:     sample(lexNames),
		NumericSample: sample(numericNames),
	}
}

func names(numbered []NumberedFile) []string {
	out := make([]string, len(numbered))
	for i, nf := range numbered {
		out[i] = nf.File.Name
	}
	return out
}

func sample(all []string) []string {
	if len(all) > SampleLimit {
		all = all[:SampleLimit]
	}
	return slices.Clone(all)
}

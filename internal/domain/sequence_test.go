package domain

import (
	"slices"
	"strconv"
	"testing"
)

func leafFiles(names ...string) []FileEntry {
	files := make([]FileEntry, len(names))
	for i, n := range names {
		files[i] = FileEntry{Name: n, Path: "/leaf/" + n}
	}
	return files
}

func TestAnalyzeSequence_FlagsUnpaddedRun(t *testing.T) {
	files := leafFiles("img1.jpg", "img2.jpg", "img10.jpg")

	report := AnalyzeSequence("/leaf", files, 2)
	if report == nil {
		t.Fatal("expected a report, got nil")
	}

	if report.Count != 3 {
		t.Errorf("count = %d, want 3", report.Count)
	}
	if report.Min != 1 || report.Max != 10 {
		t.Errorf("range = %d-%d, want 1-10", report.Min, report.Max)
	}
	if report.DesiredWidth != 2 {
		t.Errorf("desired width = %d, want 2", report.DesiredWidth)
	}
	if !slices.Equal(report.TokenWidths, []int{1, 2}) {
		t.Errorf("token widths = %v, want [1 2]", report.TokenWidths)
	}
	if !slices.Equal(report.LexSample, []string{"img1.jpg", "img10.jpg", "img2.jpg"}) {
		t.Errorf("lex sample = %v", report.LexSample)
	}
	if !slices.Equal(report.NumericSample, []string{"img1.jpg", "img2.jpg", "img10.jpg"}) {
		t.Errorf("numeric sample = %v", report.NumericSample)
	}
}

func TestAnalyzeSequence_NotFlagged(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		minFiles int
	}{
		{
			name:     "gap in values",
			files:    []string{"img1.jpg", "img2.jpg", "img4.jpg"},
			minFiles: 2,
		},
		{
			name:     "already in numeric order",
			files:    []string{"img007.png", "img08.png", "img09.png", "img10.png"},
			minFiles: 2,
		},
		{
			name:     "fully padded despite missort",
			files:    []string{"b1.jpg", "a2.jpg"},
			minFiles: 2,
		},
		{
			name:     "below threshold",
			files:    []string{"img1.jpg"},
			minFiles: 2,
		},
		{
			name:     "below threshold after dropping tokenless",
			files:    []string{"img1.jpg", "readme.txt"},
			minFiles: 2,
		},
		{
			name:     "threshold above count",
			files:    []string{"img1.jpg", "img2.jpg", "img10.jpg"},
			minFiles: 4,
		},
		{
			name:     "no digits anywhere",
			files:    []string{"alpha.txt", "beta.txt"},
			minFiles: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if report := AnalyzeSequence("/leaf", leafFiles(tt.files...), tt.minFiles); report != nil {
				t.Errorf("expected nil report, got %+v", report)
			}
		})
	}
}

// Duplicate values collapse in the distinct set, so they pass the
// contiguity check; the filename tie-break keeps the ordering stable.
func TestAnalyzeSequence_DuplicateValues(t *testing.T) {
	files := leafFiles("img1.jpg", "img2.jpg", "img3.jpg", "img03_alt.jpg")

	report := AnalyzeSequence("/leaf", files, 2)
	if report == nil {
		t.Fatal("expected a report, got nil")
	}
	if report.Count != 4 {
		t.Errorf("count = %d, want 4", report.Count)
	}
	if report.Min != 1 || report.Max != 3 {
		t.Errorf("range = %d-%d, want 1-3", report.Min, report.Max)
	}
	want := []string{"img1.jpg", "img2.jpg", "img03_alt.jpg", "img3.jpg"}
	if !slices.Equal(report.NumericSample, want) {
		t.Errorf("numeric sample = %v, want %v", report.NumericSample, want)
	}
}

func TestAnalyzeSequence_SamplesCapped(t *testing.T) {
	names := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		names = append(names, "f"+strconv.Itoa(i)+".jpg")
	}

	report := AnalyzeSequence("/leaf", leafFiles(names...), 2)
	if report == nil {
		t.Fatal("expected a report, got nil")
	}
	if report.Count != 12 {
		t.Errorf("count = %d, want 12", report.Count)
	}
	if len(report.LexSample) != SampleLimit {
		t.Errorf("lex sample length = %d, want %d", len(report.LexSample), SampleLimit)
	}
	if len(report.NumericSample) != SampleLimit {
		t.Errorf("numeric sample length = %d, want %d", len(report.NumericSample), SampleLimit)
	}
	if report.NumericSample[0] != "f1.jpg" || report.NumericSample[9] != "f10.jpg" {
		t.Errorf("numeric sample = %v", report.NumericSample)
	}
}

package domain

import (
	"testing"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name      string
		stem      string
		wantValue int
		wantText  string
		wantOK    bool
	}{
		{name: "padded token", stem: "img001", wantValue: 1, wantText: "001", wantOK: true},
		{name: "last run wins", stem: "frame_12_extra", wantValue: 12, wantText: "12", wantOK: true},
		{name: "no digits", stem: "no_digits", wantOK: false},
		{name: "digits only", stem: "042", wantValue: 42, wantText: "042", wantOK: true},
		{name: "several runs", stem: "s01e02", wantValue: 2, wantText: "02", wantOK: true},
		{name: "empty stem", stem: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ExtractToken(tt.stem)
			if ok != tt.wantOK {
				t.Fatalf("ExtractToken(%q) ok = %v, want %v", tt.stem, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if token.Value != tt.wantValue {
				t.Errorf("value = %d, want %d", token.Value, tt.wantValue)
			}
			if token.Text != tt.wantText {
				t.Errorf("text = %q, want %q", token.Text, tt.wantText)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"img001.png", "img001"},
		{"archive.001", "archive"},
		{"a.tar.gz", "a.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := Stem(tt.name); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDigitWidth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{5, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
	}

	for _, tt := range tests {
		if got := DigitWidth(tt.n); got != tt.want {
			t.Errorf("DigitWidth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

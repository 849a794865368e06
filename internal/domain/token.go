package domain

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// NumericToken is the last run of digits in a filename stem. Text keeps
// the original characters, so leading zeros survive
// (e.g., "img007" -> Value 7, Text "007").
type NumericToken struct {
	Value int
	Text  string
}

// Width returns the number of characters the token occupies.
func (t NumericToken) Width() int {
	return len(t.Text)
}

var digitRunRegex = regexp.MustCompile(`[0-9]+`)

// Stem returns a filename without its final extension
// (e.g., "img001.png" -> "img001", "a.tar.gz" -> "a.tar").
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ExtractToken returns the numeric token of a stem, taken from the last
// digit run (e.g., "frame_12_extra" -> 12, "12"). The second return is
// false for stems with no digits, or with a run too large for int.
func ExtractToken(stem string) (NumericToken, bool) {
	runs := digitRunRegex.FindAllString(stem, -1)
	if len(runs) == 0 {
		return NumericToken{}, false
	}
	text := runs[len(runs)-1]
	value, err := strconv.Atoi(text)
	if err != nil {
		return NumericToken{}, false
	}
	return NumericToken{Value: value, Text: text}, true
}

// DigitWidth returns the decimal digit count of n. A sequence whose
// largest value is n wants every token padded to this width.
func DigitWidth(n int) int {
	return len(strconv.Itoa(n))
}

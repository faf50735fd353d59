package wordle

import "testing"

func TestIsWellFormed(t *testing.T) {
	v := NewValidator(5)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"uppercase", "CRANE", true},
		{"lowercase normalized", "crane", true},
		{"mixed case", "CrAnE", true},
		{"too short", "CRAN", false},
		{"too long", "CRANES", false},
		{"empty", "", false},
		{"digit", "CRAN3", false},
		{"space", "CRA E", false},
		{"non-ascii letter", "CRÄN", false},
		{"dotless i not folded", "ıRANE", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.IsWellFormed(tc.text); got != tc.expected {
				t.Errorf("IsWellFormed(%q) = %v, expected %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestIsAcceptedWord(t *testing.T) {
	v := NewValidator(5)
	dict := NewDictionary("crane", "SLATE", "Adieu")

	tests := []struct {
		text     string
		expected bool
	}{
		{"CRANE", true},
		{"crane", true},
		{"slate", true},
		{"ADIEU", true},
		{"FJORD", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := v.IsAcceptedWord(tc.text, dict); got != tc.expected {
			t.Errorf("IsAcceptedWord(%q) = %v, expected %v", tc.text, got, tc.expected)
		}
	}

	if v.IsAcceptedWord("CRANE", nil) {
		t.Error("IsAcceptedWord with nil dictionary should be false")
	}
}

func TestNewDictionarySkipsInvalid(t *testing.T) {
	dict := NewDictionary("crane", "", "cr4ne", "ünder", "crane")
	if dict.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", dict.Len())
	}
	if !dict.Contains("CRANE") {
		t.Error("dictionary should contain CRANE")
	}
}

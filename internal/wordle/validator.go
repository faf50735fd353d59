package wordle

// Dictionary is the set of accepted uppercase words.
// A nil Dictionary means open mode: any well-formed word is accepted.
type Dictionary map[string]struct{}

// NewDictionary builds a dictionary from the given words, uppercasing them.
// Words containing anything other than ASCII letters are skipped.
func NewDictionary(words ...string) Dictionary {
	d := make(Dictionary, len(words))
	for _, w := range words {
		u := upperASCII(w)
		if u == "" || !allLetters(u) {
			continue
		}
		d[u] = struct{}{}
	}
	return d
}

// Contains reports whether the case-normalized word is in the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d[upperASCII(word)]
	return ok
}

// Len returns the number of words.
func (d Dictionary) Len() int {
	return len(d)
}

// Validator decides whether a candidate string is an acceptable guess,
// independent of game outcome.
type Validator struct {
	WordLength int
}

// NewValidator creates a validator for words of the given length.
func NewValidator(wordLength int) Validator {
	return Validator{WordLength: wordLength}
}

// IsWellFormed reports whether text, once uppercased, is exactly WordLength
// ASCII letters.
func (v Validator) IsWellFormed(text string) bool {
	u := upperASCII(text)
	return len(u) == v.WordLength && allLetters(u)
}

// IsAcceptedWord reports whether text (case-normalized) is in dict.
// A nil dictionary contains nothing; open mode is decided by the engine.
func (v Validator) IsAcceptedWord(text string, dict Dictionary) bool {
	if dict == nil {
		return false
	}
	return dict.Contains(text)
}

// upperASCII uppercases a-z and leaves every other byte alone.
// Unicode case mapping is deliberately not applied.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func allLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

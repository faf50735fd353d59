package wordle

// Score grades guess against target with the two-pass duplicate-aware method.
//
// Pass 1 marks exact matches Correct and consumes one copy of that letter
// from a remaining-count multiset built from target. Pass 2 walks the other
// positions left to right: a letter with copies left is Present and consumes
// one, anything else is Absent. Running the passes in this order keeps
// duplicate guess letters from being credited beyond the copies in target.
//
// Inputs are expected to be normalized uppercase A-Z of equal length. A
// length mismatch scores every position Absent, as does any byte outside A-Z.
func Score(guess, target string) []LetterStatus {
	n := len(guess)
	out := make([]LetterStatus, n)
	if len(target) != n {
		for i := range out {
			out[i] = Absent
		}
		return out
	}

	var remaining [26]int
	for i := 0; i < n; i++ {
		if isUpper(target[i]) {
			remaining[target[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if isUpper(guess[i]) && guess[i] == target[i] {
			out[i] = Correct
			remaining[guess[i]-'A']--
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Correct {
			continue
		}
		if !isUpper(guess[i]) {
			out[i] = Absent
			continue
		}
		j := guess[i] - 'A'
		if remaining[j] > 0 {
			out[i] = Present
			remaining[j]--
		} else {
			out[i] = Absent
		}
	}
	return out
}

// scoreGuess builds the submitted row for guess.
func scoreGuess(guess, target string) Guess {
	statuses := Score(guess, target)
	letters := make([]ScoredLetter, len(guess))
	for i := range letters {
		letters[i] = ScoredLetter{Letter: Letter(guess[i]), Status: statuses[i]}
	}
	return Guess{Letters: letters, Submitted: true}
}

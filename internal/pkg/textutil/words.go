package textutil

import "unicode"

// WordCount counts runs of letters, apostrophes and hyphens.
// Digits and punctuation separate words, so "it's well-known 42" counts 2.
func WordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if isWordRune(r) {
			if !inWord {
				count++
				inWord = true
			}
			continue
		}
		inWord = false
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '-' || r == '’'
}

package simplestrings

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Digest returns the hex SHA-256 of the exact bytes of value.
func Digest(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// ComputeProperties derives the property set of value. Lengths and
// frequencies count characters (runes), case-sensitively.
func ComputeProperties(value string) Properties {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}

	return Properties{
		Length:                utf8.RuneCountInString(value),
		IsPalindrome:          isPalindrome(value),
		UniqueCharacters:      len(freq),
		WordCount:             wordCount(value),
		SHA256Hash:            Digest(value),
		CharacterFrequencyMap: freq,
	}
}

// isPalindrome compares the lowercased value with its reversal. Whitespace
// and punctuation are kept.
func isPalindrome(value string) bool {
	lower := []rune(strings.ToLower(value))
	for i, j := 0, len(lower)-1; i < j; i, j = i+1, j-1 {
		if lower[i] != lower[j] {
			return false
		}
	}
	return true
}

// wordCount counts whitespace-separated tokens. A blank string counts as a
// single empty token.
func wordCount(value string) int {
	n := len(strings.Fields(value))
	if n == 0 {
		return 1
	}
	return n
}

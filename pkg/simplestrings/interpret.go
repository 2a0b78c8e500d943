package simplestrings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	longerThanPattern  = regexp.MustCompile(`\b(?:longer|more) than (\d+)`)
	atLeastPattern     = regexp.MustCompile(`\bat least (\d+)`)
	shorterThanPattern = regexp.MustCompile(`\b(?:shorter|less|fewer) than (\d+)`)
	atMostPattern      = regexp.MustCompile(`\bat most (\d+)`)
	letterPattern      = regexp.MustCompile(`\bletter ([a-z])\b`)
)

// InterpretQuery translates a free-text query into a FilterSet using a fixed
// list of keyword and pattern rules. Rules are applied in order and a later
// rule overwrites a filter set by an earlier one.
//
// It returns ErrUnparseableQuery when no rule fires and ErrConflictingFilters
// when the derived length bounds contradict each other.
func InterpretQuery(query string) (FilterSet, error) {
	q := strings.ToLower(query)
	var f FilterSet

	if strings.Contains(q, "palindromic") || strings.Contains(q, "palindrome") {
		t := true
		f.IsPalindrome = &t
	}

	if strings.Contains(q, "single word") || strings.Contains(q, "one word") {
		one := 1
		f.WordCount = &one
	}

	// No length exceeds math.MaxInt, so the rule is dropped rather than wrapping.
	if n, ok := firstNumber(longerThanPattern, q); ok && n < math.MaxInt {
		lo := n + 1
		f.MinLength = &lo
	}
	if n, ok := firstNumber(atLeastPattern, q); ok {
		f.MinLength = &n
	}
	if n, ok := firstNumber(shorterThanPattern, q); ok {
		hi := n - 1
		f.MaxLength = &hi
	}
	if n, ok := firstNumber(atMostPattern, q); ok {
		f.MaxLength = &n
	}

	if m := letterPattern.FindStringSubmatch(q); m != nil {
		c := m[1]
		f.ContainsCharacter = &c
	}
	// "vowel" is approximated by the letter a.
	if strings.Contains(q, "vowel") {
		a := "a"
		f.ContainsCharacter = &a
	}
	// Any z in the query text, including inside unrelated words.
	if strings.Contains(q, "z") {
		z := "z"
		f.ContainsCharacter = &z
	}

	if f.IsEmpty() {
		return FilterSet{}, ErrUnparseableQuery
	}
	if f.Conflicting() {
		return f, ErrConflictingFilters
	}
	return f, nil
}

func firstNumber(re *regexp.Regexp, q string) (int, bool) {
	m := re.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

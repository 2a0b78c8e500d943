package simplestrings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProperties(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		length     int
		palindrome bool
		unique     int
		words      int
	}{
		{"mixed case palindrome", "Level", 5, true, 4, 1},
		{"trailing space breaks palindrome", "level ", 6, false, 4, 1},
		{"two words", "hello world", 11, false, 8, 2},
		{"blank counts one word", "   ", 3, true, 1, 1},
		{"repeated letters", "aabb", 4, false, 2, 1},
		{"spaces are kept for palindrome", "nurses run", 10, false, 6, 2},
		{"multiple whitespace runs", " a \t b\n\nc ", 10, false, 6, 3},
		{"multibyte characters", "été", 3, true, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProperties(tt.value)
			assert.Equal(t, tt.length, p.Length)
			assert.Equal(t, tt.palindrome, p.IsPalindrome)
			assert.Equal(t, tt.unique, p.UniqueCharacters)
			assert.Equal(t, tt.words, p.WordCount)
			assert.Len(t, p.CharacterFrequencyMap, tt.unique)
		})
	}
}

func TestComputeProperties_FrequencyMap(t *testing.T) {
	p := ComputeProperties("aabb")
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, p.CharacterFrequencyMap)

	p = ComputeProperties("Aa a")
	assert.Equal(t, map[string]int{"A": 1, "a": 2, " ": 1}, p.CharacterFrequencyMap)
}

func TestComputeProperties_Digest(t *testing.T) {
	p := ComputeProperties("racecar")
	assert.Equal(t, "e00f9ef51a95f6e854862eed28dc0f1a68f154d9f75ddd841ab00de6ede9209b", p.SHA256Hash)
	assert.Equal(t, p.SHA256Hash, ComputeProperties("racecar").SHA256Hash)
	assert.Equal(t, p.SHA256Hash, Digest("racecar"))

	// Digest is over the raw bytes, not the lowercased form
	assert.NotEqual(t, Digest("Level"), Digest("level"))
	assert.Equal(t, "1709305c9fa966d14f56f0da3c3614bbc10adcf53d72f90341bb96d24afcfca3", Digest("Level"))
}

func TestComputeProperties_EmptyString(t *testing.T) {
	p := ComputeProperties("")
	assert.Equal(t, 0, p.Length)
	assert.True(t, p.IsPalindrome)
	assert.Equal(t, 0, p.UniqueCharacters)
	assert.Equal(t, 1, p.WordCount)
	assert.Empty(t, p.CharacterFrequencyMap)
}

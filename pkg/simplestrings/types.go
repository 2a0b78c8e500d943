package simplestrings

import "time"

// StringRecord is an analyzed string. It is immutable after creation.
type StringRecord struct {
	ID         string     `json:"id"`
	Value      string     `json:"value"`
	Properties Properties `json:"properties"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Properties holds the values derived from a string at creation time.
type Properties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// FilterSet is a conjunction of optional constraints over record properties.
// A nil field imposes no constraint.
type FilterSet struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// ListResult is the outcome of a filtered listing.
type ListResult struct {
	Data           []*StringRecord `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied FilterSet       `json:"filters_applied"`
}

// InterpretedQuery describes how a natural-language query was understood.
type InterpretedQuery struct {
	Original      string    `json:"original"`
	ParsedFilters FilterSet `json:"parsed_filters"`
}

// NaturalLanguageResult is a ListResult plus the interpretation that produced it.
type NaturalLanguageResult struct {
	ListResult
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

package simplestrings

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Query parameter names accepted by ParseFilterSet.
const (
	FilterIsPalindrome      = "is_palindrome"
	FilterMinLength         = "min_length"
	FilterMaxLength         = "max_length"
	FilterWordCount         = "word_count"
	FilterContainsCharacter = "contains_character"
)

var filterValidate = validator.New()

// filterRules holds the validator tag each raw query value must satisfy.
var filterRules = []struct {
	name string
	tag  string
}{
	{FilterIsPalindrome, "oneof=true false"},
	{FilterMinLength, "number"},
	{FilterMaxLength, "number"},
	{FilterWordCount, "number"},
	{FilterContainsCharacter, "len=1"},
}

// Matches reports whether record satisfies every constraint in the set.
// Range sanity is not checked: a set with MinLength > MaxLength matches nothing.
func (f FilterSet) Matches(record *StringRecord) bool {
	p := record.Properties
	if f.IsPalindrome != nil && p.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && p.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && p.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && p.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil {
		if _, ok := p.CharacterFrequencyMap[*f.ContainsCharacter]; !ok {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.IsPalindrome == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.WordCount == nil && f.ContainsCharacter == nil
}

// Conflicting reports whether the length bounds contradict each other.
func (f FilterSet) Conflicting() bool {
	return f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength
}

// ParseFilterSet builds a FilterSet from query parameters. Unknown
// parameters are ignored; a present but malformed one yields ErrInvalidInput.
func ParseFilterSet(values url.Values) (FilterSet, error) {
	var f FilterSet

	for _, rule := range filterRules {
		if !values.Has(rule.name) {
			continue
		}
		raw := values.Get(rule.name)
		if err := filterValidate.Var(raw, rule.tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return FilterSet{}, filterError(rule.name, raw)
			}
			return FilterSet{}, err
		}

		switch rule.name {
		case FilterIsPalindrome:
			b := raw == "true"
			f.IsPalindrome = &b
		case FilterContainsCharacter:
			c := raw
			f.ContainsCharacter = &c
		default:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return FilterSet{}, filterError(rule.name, raw)
			}
			switch rule.name {
			case FilterMinLength:
				f.MinLength = &n
			case FilterMaxLength:
				f.MaxLength = &n
			case FilterWordCount:
				f.WordCount = &n
			}
		}
	}

	return f, nil
}

func filterError(name, raw string) error {
	if name == FilterContainsCharacter {
		return invalidInput("%s must be a single character", name)
	}
	return invalidInput("invalid value %q for %s", raw, name)
}

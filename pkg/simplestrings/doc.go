// Package simplestrings provides a content-addressed store of analyzed text
// strings.
//
// Every stored string is keyed by the SHA-256 digest of its exact bytes and
// carries a fixed set of derived properties (length, palindrome status,
// unique character count, word count, digest and character frequencies)
// computed once at creation. The Service interface orchestrates creation,
// retrieval by value, deletion, filtered listing and heuristic
// natural-language filtering. Repository implementations live under repo/,
// the HTTP surface under api/.
package simplestrings

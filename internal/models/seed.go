package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Seed is a seed label as it appears in the dataset, e.g. "1" or "16b".
// Letter suffixes disambiguate play-in teams sharing a seed line.
type Seed string

// ParseError reports a seed label that does not normalize to a positive integer.
type ParseError struct {
	Seed   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid seed %q: %s", e.Seed, e.Reason)
}

// Number strips any trailing letter suffix and returns the numeric seed.
func (s Seed) Number() (int, error) {
	trimmed := strings.TrimRightFunc(strings.TrimSpace(string(s)), unicode.IsLetter)
	if trimmed == "" {
		return 0, &ParseError{Seed: string(s), Reason: "no digits"}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Seed: string(s), Reason: "not numeric"}
	}
	if n <= 0 {
		return 0, &ParseError{Seed: string(s), Reason: "must be positive"}
	}
	return n, nil
}

// UnmarshalJSON accepts both `"16b"` and `16`.
func (s *Seed) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Seed(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	*s = Seed(n.String())
	return nil
}

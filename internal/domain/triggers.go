package domain

import "strings"

// NormalizeTrigger trims surrounding whitespace and rejects blank text.
func NormalizeTrigger(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrBlankTrigger
	}
	return trimmed, nil
}

// AddTrigger returns a new list with text appended. Matching is exact after
// trimming; a repeat returns ErrDuplicateTrigger. The input is not modified.
func AddTrigger(triggers []string, text string) ([]string, error) {
	normalized, err := NormalizeTrigger(text)
	if err != nil {
		return nil, err
	}
	for _, t := range triggers {
		if t == normalized {
			return nil, ErrDuplicateTrigger
		}
	}
	out := make([]string, 0, len(triggers)+1)
	out = append(out, triggers...)
	return append(out, normalized), nil
}

// RemoveTrigger returns a new list without the first exact match of text.
// Removing a trigger that is not present is not an error.
func RemoveTrigger(triggers []string, text string) []string {
	target := strings.TrimSpace(text)
	out := make([]string, 0, len(triggers))
	removed := false
	for _, t := range triggers {
		if !removed && t == target {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out
}

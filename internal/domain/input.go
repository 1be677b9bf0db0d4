package domain

import (
	"fmt"
	"strings"
)

// QuickAddKeys are the metadata keys recognized by quick-add input.
var QuickAddKeys = []string{"due", "project", "priority", "description", "estimate"}

// QuickAdd is the result of parsing quick-add arguments: positional words
// form the name, "key:value" tokens carry metadata.
type QuickAdd struct {
	Fields map[string]string
	Name   string
}

// ParseQuickAdd splits args into a task name and key:value metadata.
// Tokens with an empty key (":foo") are treated as name words.
func ParseQuickAdd(args []string) QuickAdd {
	var nameParts []string
	fields := make(map[string]string)

	for _, arg := range args {
		if key, value, found := strings.Cut(arg, ":"); found && key != "" {
			fields[key] = value
			continue
		}
		nameParts = append(nameParts, arg)
	}

	return QuickAdd{
		Name:   strings.Join(nameParts, " "),
		Fields: fields,
	}
}

// ExpandKey resolves a possibly abbreviated key against candidates: an exact
// match wins, otherwise a unique prefix match. "pri" expands to "priority",
// but "p" is ambiguous between "project" and "priority".
func ExpandKey(key string, candidates []string) (string, error) {
	for _, c := range candidates {
		if c == key {
			return key, nil
		}
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, key) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	default:
		return "", fmt.Errorf("%w: %q matches %v", ErrAmbiguousKey, key, matches)
	}
}

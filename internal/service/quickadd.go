package service

import (
	"time"

	"tempo/internal/domain"
)

// QuickAddInput turns quick-add arguments into a CreateInput: positional
// words form the name, key:value tokens (with prefix expansion) set the
// metadata fields.
func QuickAddInput(args []string, now time.Time) (CreateInput, error) {
	parsed := domain.ParseQuickAdd(args)
	if parsed.Name == "" {
		return CreateInput{}, domain.ErrEmptyName
	}

	in := CreateInput{Name: parsed.Name}
	for key, value := range parsed.Fields {
		full, err := domain.ExpandKey(key, domain.QuickAddKeys)
		if err != nil {
			return CreateInput{}, err
		}
		switch full {
		case "due":
			due, err := domain.ParseDueDate(value, now)
			if err != nil {
				return CreateInput{}, err
			}
			in.Due = &due
		case "project":
			in.Project = value
		case "priority":
			in.Priority = domain.ParsePriority(value)
		case "description":
			in.Description = value
		case "estimate":
			if _, err := domain.ParseWorkDuration(value); err != nil {
				return CreateInput{}, err
			}
			in.Estimate = value
		}
	}
	return in, nil
}

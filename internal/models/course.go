package models

import (
	"strings"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Course is a unit of training offered to students. New courses default to
// active.
type Course struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationWeeks int    `json:"duration_weeks"`
	Active        bool   `json:"active"`
}

// Validate checks field invariants ahead of repository writes.
func (c Course) Validate() error {
	if c.ID <= 0 {
		return appErrors.Validation("course id must be a positive number")
	}
	if strings.TrimSpace(c.Name) == "" {
		return appErrors.Validation("course name cannot be empty")
	}
	if strings.TrimSpace(c.Description) == "" {
		return appErrors.Validation("description cannot be empty")
	}
	if c.DurationWeeks <= 0 {
		return appErrors.Validation("duration in weeks must be positive")
	}
	return nil
}

package models

import (
	"fmt"
	"strings"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Trainer delivers courses for the training provider.
type Trainer struct {
	Person
	Specialization  string `json:"specialization"`
	YearsExperience int    `json:"years_experience"`
}

// DisplayName includes the specialization.
func (t Trainer) DisplayName() string {
	return fmt.Sprintf("%s (%s)", t.Person.DisplayName(), t.Specialization)
}

// Validate checks field invariants ahead of repository writes.
func (t Trainer) Validate() error {
	if err := t.Person.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Specialization) == "" {
		return appErrors.Validation("specialization cannot be empty")
	}
	if t.YearsExperience < 0 {
		return appErrors.Validation("years of experience cannot be negative")
	}
	return nil
}

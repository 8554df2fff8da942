package models

import (
	"fmt"
	"strings"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Student is a learner registered with the training provider. New students
// default to active.
type Student struct {
	Person
	Batch  string `json:"batch"`
	Active bool   `json:"active"`
}

// DisplayName includes the batch label.
func (s Student) DisplayName() string {
	return fmt.Sprintf("%s (batch %s)", s.Person.DisplayName(), s.Batch)
}

// Validate checks field invariants ahead of repository writes.
func (s Student) Validate() error {
	if err := s.Person.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Batch) == "" {
		return appErrors.Validation("batch cannot be empty")
	}
	return nil
}

package models

import (
	"strings"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Person carries the identity fields shared by students and trainers.
type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// DisplayName joins the name parts.
func (p Person) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// Validate checks the shared identity fields.
func (p Person) Validate() error {
	if p.ID <= 0 {
		return appErrors.Validation("id must be a positive number")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return appErrors.Validation("first name cannot be empty")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return appErrors.Validation("last name cannot be empty")
	}
	return ValidateEmail(p.Email)
}

// ValidateEmail applies a minimal local@domain.tld shape check, nothing
// stricter.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return appErrors.Validation("email cannot be empty")
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return appErrors.Validation("email must contain a single '@'")
	}
	if strings.TrimSpace(local) == "" {
		return appErrors.Validation("email local part cannot be empty")
	}
	if strings.TrimSpace(domain) == "" || !strings.Contains(domain, ".") {
		return appErrors.Validation("email domain must contain a '.'")
	}
	return nil
}

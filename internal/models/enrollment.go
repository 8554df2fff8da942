package models

import (
	"time"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusActive    EnrollmentStatus = "ACTIVE"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentStatusCancelled EnrollmentStatus = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusCancelled:
		return true
	}
	return false
}

// Enrollment links a student to a course from a given date. New enrollments
// start ACTIVE on the current day.
type Enrollment struct {
	ID         int64            `json:"id"`
	StudentID  int64            `json:"student_id"`
	CourseID   int64            `json:"course_id"`
	EnrolledOn time.Time        `json:"enrolled_on"`
	Status     EnrollmentStatus `json:"status"`
}

// Validate checks field invariants ahead of repository writes.
func (e Enrollment) Validate() error {
	if e.ID <= 0 {
		return appErrors.Validation("enrollment id must be a positive number")
	}
	if e.StudentID <= 0 {
		return appErrors.Validation("student id must be a positive number")
	}
	if e.CourseID <= 0 {
		return appErrors.Validation("course id must be a positive number")
	}
	if e.EnrolledOn.IsZero() {
		return appErrors.Validation("enrollment date cannot be empty")
	}
	if !e.Status.Valid() {
		return appErrors.Validationf("unknown enrollment status %q", e.Status)
	}
	return nil
}

// DateOnly truncates t to its calendar day in UTC. Enrollment dates carry no
// time-of-day component.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

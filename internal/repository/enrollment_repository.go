package repository

import (
	"github.com/averra-labs/trainhub/internal/models"
)

// EnrollmentRepository holds the in-memory enrollment collection.
// Enrollments track a status lifecycle rather than an active flag, so the
// plain store applies.
type EnrollmentRepository struct {
	*Store[models.Enrollment]
}

// NewEnrollmentRepository constructs an empty EnrollmentRepository.
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{
		Store: NewStore[models.Enrollment]("enrollment",
			func(e models.Enrollment) int64 { return e.ID }),
	}
}

// FindByStudentID returns every enrollment for the student.
func (r *EnrollmentRepository) FindByStudentID(studentID int64) []models.Enrollment {
	return r.filter(func(e models.Enrollment) bool {
		return e.StudentID == studentID
	})
}

// FindByCourseID returns every enrollment for the course.
func (r *EnrollmentRepository) FindByCourseID(courseID int64) []models.Enrollment {
	return r.filter(func(e models.Enrollment) bool {
		return e.CourseID == courseID
	})
}

// FindByStatus returns enrollments carrying the given status.
func (r *EnrollmentRepository) FindByStatus(status models.EnrollmentStatus) []models.Enrollment {
	return r.filter(func(e models.Enrollment) bool {
		return e.Status == status
	})
}

// FindByStudentAndCourse returns the earliest enrollment linking the student
// and course, regardless of status.
func (r *EnrollmentRepository) FindByStudentAndCourse(studentID, courseID int64) (models.Enrollment, bool) {
	return r.first(func(e models.Enrollment) bool {
		return e.StudentID == studentID && e.CourseID == courseID
	})
}

// UpdateStatus rewrites the status of the enrollment with the given id.
func (r *EnrollmentRepository) UpdateStatus(id int64, status models.EnrollmentStatus) error {
	return r.mutate(id, func(e *models.Enrollment) {
		e.Status = status
	})
}

// IsStudentEnrolled reports whether any enrollment links the student and
// course, whatever its status.
func (r *EnrollmentRepository) IsStudentEnrolled(studentID, courseID int64) bool {
	_, ok := r.FindByStudentAndCourse(studentID, courseID)
	return ok
}

// CountByStatus counts enrollments carrying the given status.
func (r *EnrollmentRepository) CountByStatus(status models.EnrollmentStatus) int {
	return r.countWhere(func(e models.Enrollment) bool {
		return e.Status == status
	})
}

// FindActiveByStudentID returns the student's ACTIVE enrollments.
func (r *EnrollmentRepository) FindActiveByStudentID(studentID int64) []models.Enrollment {
	return r.filter(func(e models.Enrollment) bool {
		return e.StudentID == studentID && e.Status == models.EnrollmentStatusActive
	})
}

// FindActiveByCourseID returns the course's ACTIVE enrollments.
func (r *EnrollmentRepository) FindActiveByCourseID(courseID int64) []models.Enrollment {
	return r.filter(func(e models.Enrollment) bool {
		return e.CourseID == courseID && e.Status == models.EnrollmentStatusActive
	})
}

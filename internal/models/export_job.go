package models

import "time"

// ExportDataset enumerates exportable datasets.
type ExportDataset string

const (
	ExportDatasetStudents    ExportDataset = "students"
	ExportDatasetCourses     ExportDataset = "courses"
	ExportDatasetEnrollments ExportDataset = "enrollments"
	ExportDatasetRoster      ExportDataset = "course-roster"
	ExportDatasetCapacity    ExportDataset = "capacity"
)

// Valid reports whether the dataset is one of the exportable sets.
func (d ExportDataset) Valid() bool {
	switch d {
	case ExportDatasetStudents, ExportDatasetCourses, ExportDatasetEnrollments, ExportDatasetRoster, ExportDatasetCapacity:
		return true
	default:
		return false
	}
}

// ExportFormat enumerates supported export formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// Valid reports whether the format is renderable.
func (f ExportFormat) Valid() bool {
	return f == ExportFormatCSV || f == ExportFormatPDF
}

// ExportStatus captures background job lifecycle states.
type ExportStatus string

const (
	ExportStatusQueued  ExportStatus = "QUEUED"
	ExportStatusRunning ExportStatus = "RUNNING"
	ExportStatusDone    ExportStatus = "DONE"
	ExportStatusFailed  ExportStatus = "FAILED"
)

// ExportJob tracks one background export through its lifecycle. CourseID is
// only set for the course-roster dataset.
type ExportJob struct {
	ID           string        `json:"id"`
	Dataset      ExportDataset `json:"dataset"`
	Format       ExportFormat  `json:"format"`
	CourseID     int64         `json:"course_id,omitempty"`
	Status       ExportStatus  `json:"status"`
	File         string        `json:"file,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	FinishedAt   *time.Time    `json:"finished_at,omitempty"`
}

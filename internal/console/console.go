package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/averra-labs/trainhub/internal/importcsv"
	"github.com/averra-labs/trainhub/internal/models"
	"github.com/averra-labs/trainhub/internal/service"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// App is the interactive text menu over the domain services. Domain errors
// are rendered and the loop continues; only an exhausted input stream or an
// explicit exit ends Run.
type App struct {
	prompt      *Prompter
	students    *service.StudentService
	courses     *service.CourseService
	trainers    *service.TrainerService
	enrollments *service.EnrollmentService
	capacity    *service.CapacityService
	exporter    *service.ExportService
	imports     *service.ImportService
}

// NewApp wires the menu to the services it drives.
func NewApp(prompt *Prompter, students *service.StudentService, courses *service.CourseService, trainers *service.TrainerService, enrollments *service.EnrollmentService, capacity *service.CapacityService, exporter *service.ExportService, imports *service.ImportService) *App {
	return &App{
		prompt:      prompt,
		students:    students,
		courses:     courses,
		trainers:    trainers,
		enrollments: enrollments,
		capacity:    capacity,
		exporter:    exporter,
		imports:     imports,
	}
}

// Run drives the main menu until the user exits or input ends.
func (a *App) Run() error {
	a.prompt.Header("TrainHub - Course Management")
	for {
		a.prompt.Println("\n  1. Students\n  2. Courses\n  3. Trainers\n  4. Enrollments\n  5. Capacity report\n  6. Export data\n  7. Import data\n  0. Exit")
		choice, err := a.prompt.ReadIntInRange("Select option: ", 0, 7)
		if err != nil {
			return finish(err)
		}

		switch choice {
		case 0:
			a.prompt.Info("Goodbye.")
			return nil
		case 1:
			err = a.studentMenu()
		case 2:
			err = a.courseMenu()
		case 3:
			err = a.trainerMenu()
		case 4:
			err = a.enrollmentMenu()
		case 5:
			a.showCapacityReport()
		case 6:
			err = a.exportMenu()
		case 7:
			err = a.importMenu()
		}
		if err != nil {
			return finish(err)
		}
	}
}

// finish maps end-of-input to a clean exit.
func finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// renderError prints a domain error and lets the loop continue.
func (a *App) renderError(err error) {
	a.prompt.Error(appErrors.FromError(err).Message)
}

func (a *App) studentMenu() error {
	for {
		a.prompt.SubHeader("Students")
		a.prompt.Println("  1. Register  2. List all  3. List active  4. Find by batch  5. Update  6. Deactivate  7. Activate  0. Back")
		choice, err := a.prompt.ReadIntInRange("Select option: ", 0, 7)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			if err := a.registerStudent(); err != nil {
				return err
			}
		case 2:
			a.printStudents(a.students.List())
		case 3:
			a.printStudents(a.students.ListActive())
		case 4:
			batch, err := a.prompt.ReadLine("Batch: ")
			if err != nil {
				return err
			}
			a.printStudents(a.students.ListByBatch(batch))
		case 5:
			if err := a.updateStudent(); err != nil {
				return err
			}
		case 6:
			id, err := a.prompt.ReadInt64("Student id: ")
			if err != nil {
				return err
			}
			if err := a.students.Deactivate(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Student %d deactivated.", id))
			}
		case 7:
			id, err := a.prompt.ReadInt64("Student id: ")
			if err != nil {
				return err
			}
			if err := a.students.Activate(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Student %d activated.", id))
			}
		}
	}
}

func (a *App) registerStudent() error {
	req, err := a.readStudentRequest()
	if err != nil {
		return err
	}
	student, err := a.students.Create(*req)
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Registered %s with id %d.", student.DisplayName(), student.ID))
	return nil
}

func (a *App) updateStudent() error {
	id, err := a.prompt.ReadInt64("Student id: ")
	if err != nil {
		return err
	}
	req, err := a.readStudentRequest()
	if err != nil {
		return err
	}
	active, err := a.prompt.ReadBool("Active")
	if err != nil {
		return err
	}
	student, err := a.students.Update(id, service.UpdateStudentRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Batch:     req.Batch,
		Active:    active,
	})
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Updated student %d.", student.ID))
	return nil
}

func (a *App) readStudentRequest() (*service.CreateStudentRequest, error) {
	first, err := a.prompt.ReadLine("First name: ")
	if err != nil {
		return nil, err
	}
	last, err := a.prompt.ReadLine("Last name: ")
	if err != nil {
		return nil, err
	}
	email, err := a.prompt.ReadLine("Email: ")
	if err != nil {
		return nil, err
	}
	batch, err := a.prompt.ReadLine("Batch: ")
	if err != nil {
		return nil, err
	}
	return &service.CreateStudentRequest{FirstName: first, LastName: last, Email: email, Batch: batch}, nil
}

func (a *App) printStudents(students []models.Student) {
	if len(students) == 0 {
		a.prompt.Info("No students found.")
		return
	}
	a.prompt.Separator()
	for _, s := range students {
		state := "active"
		if !s.Active {
			state = "inactive"
		}
		a.prompt.Printf("%-6d %-30s %-30s %-10s %s\n", s.ID, s.DisplayName(), s.Email, s.Batch, state)
	}
	a.prompt.Separator()
}

func (a *App) courseMenu() error {
	for {
		a.prompt.SubHeader("Courses")
		a.prompt.Println("  1. Create  2. List all  3. Search by name  4. By duration  5. Deactivate  6. Activate  0. Back")
		choice, err := a.prompt.ReadIntInRange("Select option: ", 0, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			if err := a.createCourse(); err != nil {
				return err
			}
		case 2:
			a.printCourses(a.courses.List())
		case 3:
			pattern, err := a.prompt.ReadLine("Name contains: ")
			if err != nil {
				return err
			}
			a.printCourses(a.courses.SearchByName(pattern))
		case 4:
			minWeeks, err := a.prompt.ReadInt("Min weeks: ")
			if err != nil {
				return err
			}
			maxWeeks, err := a.prompt.ReadInt("Max weeks: ")
			if err != nil {
				return err
			}
			courses, err := a.courses.ListByDurationRange(minWeeks, maxWeeks)
			if err != nil {
				a.renderError(err)
				continue
			}
			a.printCourses(courses)
		case 5:
			id, err := a.prompt.ReadInt64("Course id: ")
			if err != nil {
				return err
			}
			if err := a.courses.Deactivate(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Course %d deactivated.", id))
			}
		case 6:
			id, err := a.prompt.ReadInt64("Course id: ")
			if err != nil {
				return err
			}
			if err := a.courses.Activate(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Course %d activated.", id))
			}
		}
	}
}

func (a *App) createCourse() error {
	name, err := a.prompt.ReadLine("Name: ")
	if err != nil {
		return err
	}
	description, err := a.prompt.ReadLine("Description: ")
	if err != nil {
		return err
	}
	weeks, err := a.prompt.ReadInt("Duration (weeks): ")
	if err != nil {
		return err
	}
	course, err := a.courses.Create(service.CreateCourseRequest{Name: name, Description: description, DurationWeeks: weeks})
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Created course %q with id %d.", course.Name, course.ID))
	return nil
}

func (a *App) printCourses(courses []models.Course) {
	if len(courses) == 0 {
		a.prompt.Info("No courses found.")
		return
	}
	a.prompt.Separator()
	for _, c := range courses {
		state := "active"
		if !c.Active {
			state = "inactive"
		}
		a.prompt.Printf("%-6d %-30s %3d weeks  %s\n", c.ID, c.Name, c.DurationWeeks, state)
	}
	a.prompt.Separator()
}

func (a *App) trainerMenu() error {
	for {
		a.prompt.SubHeader("Trainers")
		a.prompt.Println("  1. Register  2. List all  3. By specialization  0. Back")
		choice, err := a.prompt.ReadIntInRange("Select option: ", 0, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			if err := a.registerTrainer(); err != nil {
				return err
			}
		case 2:
			a.printTrainers(a.trainers.List())
		case 3:
			spec, err := a.prompt.ReadLine("Specialization: ")
			if err != nil {
				return err
			}
			a.printTrainers(a.trainers.ListBySpecialization(spec))
		}
	}
}

func (a *App) registerTrainer() error {
	first, err := a.prompt.ReadLine("First name: ")
	if err != nil {
		return err
	}
	last, err := a.prompt.ReadLine("Last name: ")
	if err != nil {
		return err
	}
	email, err := a.prompt.ReadLine("Email: ")
	if err != nil {
		return err
	}
	spec, err := a.prompt.ReadLine("Specialization: ")
	if err != nil {
		return err
	}
	years, err := a.prompt.ReadInt("Years of experience: ")
	if err != nil {
		return err
	}
	trainer, err := a.trainers.Create(service.CreateTrainerRequest{
		FirstName:       first,
		LastName:        last,
		Email:           email,
		Specialization:  spec,
		YearsExperience: years,
	})
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Registered %s with id %d.", trainer.DisplayName(), trainer.ID))
	return nil
}

func (a *App) printTrainers(trainers []models.Trainer) {
	if len(trainers) == 0 {
		a.prompt.Info("No trainers found.")
		return
	}
	a.prompt.Separator()
	for _, t := range trainers {
		a.prompt.Printf("%-6d %-40s %2d years\n", t.ID, t.DisplayName(), t.YearsExperience)
	}
	a.prompt.Separator()
}

func (a *App) enrollmentMenu() error {
	for {
		a.prompt.SubHeader("Enrollments")
		a.prompt.Println("  1. Enroll  2. List all  3. By student  4. By course  5. By status  6. Complete  7. Cancel  0. Back")
		choice, err := a.prompt.ReadIntInRange("Select option: ", 0, 7)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			if err := a.enroll(); err != nil {
				return err
			}
		case 2:
			a.printEnrollments(a.enrollments.List())
		case 3:
			id, err := a.prompt.ReadInt64("Student id: ")
			if err != nil {
				return err
			}
			list, err := a.enrollments.ListByStudent(id)
			if err != nil {
				a.renderError(err)
				continue
			}
			a.printEnrollments(list)
		case 4:
			id, err := a.prompt.ReadInt64("Course id: ")
			if err != nil {
				return err
			}
			list, err := a.enrollments.ListByCourse(id)
			if err != nil {
				a.renderError(err)
				continue
			}
			a.printEnrollments(list)
		case 5:
			raw, err := a.prompt.ReadLine("Status (ACTIVE/COMPLETED/CANCELLED): ")
			if err != nil {
				return err
			}
			list, err := a.enrollments.ListByStatus(models.EnrollmentStatus(strings.ToUpper(raw)))
			if err != nil {
				a.renderError(err)
				continue
			}
			a.printEnrollments(list)
		case 6:
			id, err := a.prompt.ReadInt64("Enrollment id: ")
			if err != nil {
				return err
			}
			if err := a.enrollments.Complete(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Enrollment %d completed.", id))
			}
		case 7:
			id, err := a.prompt.ReadInt64("Enrollment id: ")
			if err != nil {
				return err
			}
			if err := a.enrollments.Cancel(id); err != nil {
				a.renderError(err)
			} else {
				a.prompt.Success(fmt.Sprintf("Enrollment %d cancelled.", id))
			}
		}
	}
}

func (a *App) enroll() error {
	studentID, err := a.prompt.ReadInt64("Student id: ")
	if err != nil {
		return err
	}
	courseID, err := a.prompt.ReadInt64("Course id: ")
	if err != nil {
		return err
	}
	enrollment, err := a.enrollments.Enroll(service.EnrollRequest{StudentID: studentID, CourseID: courseID})
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Enrollment %d created.", enrollment.ID))
	return nil
}

func (a *App) printEnrollments(enrollments []models.Enrollment) {
	if len(enrollments) == 0 {
		a.prompt.Info("No enrollments found.")
		return
	}
	a.prompt.Separator()
	for _, e := range enrollments {
		a.prompt.Printf("%-6d student %-6d course %-6d %s  %s\n",
			e.ID, e.StudentID, e.CourseID, e.EnrolledOn.Format("2006-01-02"), e.Status)
	}
	a.prompt.Separator()
}

func (a *App) showCapacityReport() {
	report := a.capacity.Report()
	a.prompt.SubHeader("Id Capacity Report")
	a.prompt.Printf("%-12s %-14s %8s %10s %8s\n", "KIND", "RANGE", "ISSUED", "REMAINING", "USED")
	for _, usage := range report.Kinds {
		a.prompt.Printf("%-12s [%d, %d] %8d %10d %7.1f%%\n",
			usage.Kind, usage.Range.Start, usage.Range.End, usage.Issued, usage.Remaining, usage.UsagePercent*100)
	}
	if report.Approaching {
		for _, warning := range a.capacity.Warnings() {
			a.prompt.Error(warning)
		}
	} else {
		a.prompt.Info("All ranges below the warn threshold.")
	}
}

func (a *App) importMenu() error {
	a.prompt.SubHeader("Import")
	a.prompt.Println("  1. Students  2. Courses")
	choice, err := a.prompt.ReadIntInRange("Dataset: ", 1, 2)
	if err != nil {
		return err
	}
	path, err := a.prompt.ReadLine("CSV file path: ")
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		a.prompt.Error(fmt.Sprintf("Cannot open %s: %v", path, err))
		return nil
	}
	defer file.Close()

	var summary *service.ImportSummary
	switch choice {
	case 1:
		records, err := importcsv.Students(file)
		if err != nil {
			a.renderError(err)
			return nil
		}
		summary, err = a.imports.ImportStudents(context.Background(), records)
		if err != nil {
			a.renderError(err)
			return nil
		}
	case 2:
		records, err := importcsv.Courses(file)
		if err != nil {
			a.renderError(err)
			return nil
		}
		summary, err = a.imports.ImportCourses(context.Background(), records)
		if err != nil {
			a.renderError(err)
			return nil
		}
	}

	a.prompt.Success(fmt.Sprintf("Imported %d, skipped %d, failed %d (batch %s).",
		summary.Imported, summary.Skipped, len(summary.Failures), summary.BatchID))
	for _, failure := range summary.Failures {
		a.prompt.Error(fmt.Sprintf("Row %d (id %d): %s", failure.Index, failure.ID, failure.Reason))
	}
	return nil
}

func (a *App) exportMenu() error {
	a.prompt.SubHeader("Export")
	a.prompt.Println("  1. Students  2. Courses  3. Enrollments  4. Course roster  5. Capacity")
	choice, err := a.prompt.ReadIntInRange("Dataset: ", 1, 5)
	if err != nil {
		return err
	}
	datasets := map[int]models.ExportDataset{
		1: models.ExportDatasetStudents,
		2: models.ExportDatasetCourses,
		3: models.ExportDatasetEnrollments,
		4: models.ExportDatasetRoster,
		5: models.ExportDatasetCapacity,
	}
	dataset := datasets[choice]

	var courseID int64
	if dataset == models.ExportDatasetRoster {
		courseID, err = a.prompt.ReadInt64("Course id: ")
		if err != nil {
			return err
		}
	}

	pdf, err := a.prompt.ReadBool("Render as PDF")
	if err != nil {
		return err
	}
	format := models.ExportFormatCSV
	if pdf {
		format = models.ExportFormatPDF
	}

	if err := service.ValidateJobRequest(dataset, format, courseID); err != nil {
		a.renderError(err)
		return nil
	}

	job := &models.ExportJob{
		ID:        uuid.NewString(),
		Dataset:   dataset,
		Format:    format,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	result, err := a.exporter.Generate(job)
	if err != nil {
		a.renderError(err)
		return nil
	}
	a.prompt.Success(fmt.Sprintf("Exported %d rows to %s.", result.Rows, result.RelativePath))
	return nil
}

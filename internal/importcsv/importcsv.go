// Package importcsv decodes CSV into bulk-import records. The codec lives
// with the surfaces (HTTP handler, console) so the import service stays
// transport-agnostic.
package importcsv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/averra-labs/trainhub/internal/service"
	apperrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Students decodes student rows. The first line names the columns, so
// column order is free. An omitted or empty "active" cell leaves the flag
// unset and the import defaults it.
func Students(r io.Reader) ([]service.ImportStudentRecord, error) {
	rows, cols, err := read(r, "id", "first_name", "last_name", "email", "batch")
	if err != nil {
		return nil, err
	}
	records := make([]service.ImportStudentRecord, 0, len(rows))
	for i, row := range rows {
		id, err := parseInt64(row, cols, "id", i)
		if err != nil {
			return nil, err
		}
		active, err := parseActive(row, cols, i)
		if err != nil {
			return nil, err
		}
		records = append(records, service.ImportStudentRecord{
			ID:        id,
			FirstName: cell(row, cols, "first_name"),
			LastName:  cell(row, cols, "last_name"),
			Email:     cell(row, cols, "email"),
			Batch:     cell(row, cols, "batch"),
			Active:    active,
		})
	}
	return records, nil
}

// Courses decodes course rows under the same header contract as Students.
func Courses(r io.Reader) ([]service.ImportCourseRecord, error) {
	rows, cols, err := read(r, "id", "name", "description", "duration_weeks")
	if err != nil {
		return nil, err
	}
	records := make([]service.ImportCourseRecord, 0, len(rows))
	for i, row := range rows {
		id, err := parseInt64(row, cols, "id", i)
		if err != nil {
			return nil, err
		}
		weeks, err := parseInt64(row, cols, "duration_weeks", i)
		if err != nil {
			return nil, err
		}
		active, err := parseActive(row, cols, i)
		if err != nil {
			return nil, err
		}
		records = append(records, service.ImportCourseRecord{
			ID:            id,
			Name:          cell(row, cols, "name"),
			Description:   cell(row, cols, "description"),
			DurationWeeks: int(weeks),
			Active:        active,
		})
	}
	return records, nil
}

type columns map[string]int

func read(r io.Reader, required ...string) ([][]string, columns, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, apperrors.Validation("csv body is missing a header row")
	}
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, apperrors.Validationf("csv header is missing column %q", name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, apperrors.Validationf("malformed csv: %v", err)
	}
	return rows, cols, nil
}

func cell(row []string, cols columns, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt64(row []string, cols columns, name string, rowIndex int) (int64, error) {
	raw := cell(row, cols, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validationf("csv row %d: %s %q is not a number", rowIndex+1, name, raw)
	}
	return value, nil
}

func parseActive(row []string, cols columns, rowIndex int) (*bool, error) {
	raw := cell(row, cols, "active")
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.Validationf("csv row %d: active %q is not a boolean", rowIndex+1, raw)
	}
	return &value, nil
}

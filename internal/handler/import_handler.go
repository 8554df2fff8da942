package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averra-labs/trainhub/internal/importcsv"
	"github.com/averra-labs/trainhub/internal/service"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/response"
)

// ImportHandler exposes bulk import endpoints. Each endpoint accepts a JSON
// array, a raw text/csv body, or a multipart upload with a "file" part.
type ImportHandler struct {
	imports  *service.ImportService
	maxBatch int
}

// NewImportHandler constructs ImportHandler. maxBatch caps the number of
// records accepted per request.
func NewImportHandler(imports *service.ImportService, maxBatch int) *ImportHandler {
	return &ImportHandler{imports: imports, maxBatch: maxBatch}
}

// Students godoc
// @Summary Bulk import students with pre-assigned ids
// @Description Accepts a JSON array, a text/csv body, or a multipart "file" upload
// @Tags Imports
// @Accept json
// @Produce json
// @Param payload body []service.ImportStudentRecord true "Student records"
// @Success 200 {object} response.Envelope
// @Router /imports/students [post]
func (h *ImportHandler) Students(c *gin.Context) {
	var records []service.ImportStudentRecord
	body, isCSV, err := csvBody(c)
	switch {
	case err != nil:
		response.Error(c, err)
		return
	case isCSV:
		defer body.Close()
		records, err = importcsv.Students(body)
	default:
		if bindErr := c.ShouldBindJSON(&records); bindErr != nil {
			err = appErrors.Wrap(bindErr, appErrors.ErrValidation.Kind, http.StatusBadRequest, "invalid payload")
		}
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.checkBatch(len(records)); err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.imports.ImportStudents(c.Request.Context(), records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Courses godoc
// @Summary Bulk import courses with pre-assigned ids
// @Description Accepts a JSON array, a text/csv body, or a multipart "file" upload
// @Tags Imports
// @Accept json
// @Produce json
// @Param payload body []service.ImportCourseRecord true "Course records"
// @Success 200 {object} response.Envelope
// @Router /imports/courses [post]
func (h *ImportHandler) Courses(c *gin.Context) {
	var records []service.ImportCourseRecord
	body, isCSV, err := csvBody(c)
	switch {
	case err != nil:
		response.Error(c, err)
		return
	case isCSV:
		defer body.Close()
		records, err = importcsv.Courses(body)
	default:
		if bindErr := c.ShouldBindJSON(&records); bindErr != nil {
			err = appErrors.Wrap(bindErr, appErrors.ErrValidation.Kind, http.StatusBadRequest, "invalid payload")
		}
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.checkBatch(len(records)); err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.imports.ImportCourses(c.Request.Context(), records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// checkBatch rejects empty batches and batches larger than maxBatch.
func (h *ImportHandler) checkBatch(n int) error {
	if n == 0 {
		return appErrors.Validation("import batch cannot be empty")
	}
	if n > h.maxBatch {
		return appErrors.Validationf("import batch exceeds the limit of %d records", h.maxBatch)
	}
	return nil
}

// csvBody returns a CSV reader when the request carries one: either a raw
// text/csv body or a multipart form with a "file" part.
func csvBody(c *gin.Context) (io.ReadCloser, bool, error) {
	switch c.ContentType() {
	case "text/csv":
		return c.Request.Body, true, nil
	case "multipart/form-data":
		header, err := c.FormFile("file")
		if err != nil {
			return nil, true, appErrors.Wrap(err, appErrors.ErrValidation.Kind, http.StatusBadRequest, "multipart upload needs a \"file\" part")
		}
		file, err := header.Open()
		if err != nil {
			return nil, true, appErrors.Wrap(err, appErrors.ErrValidation.Kind, http.StatusBadRequest, "unreadable \"file\" part")
		}
		return file, true, nil
	}
	return nil, false, nil
}

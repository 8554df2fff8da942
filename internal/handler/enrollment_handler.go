package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/averra-labs/trainhub/internal/models"
	"github.com/averra-labs/trainhub/internal/service"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/response"
)

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollments
// @Tags Enrollments
// @Produce json
// @Param studentId query int false "Filter by student"
// @Param courseId query int false "Filter by course"
// @Param status query string false "Filter by status (ACTIVE, COMPLETED, CANCELLED)"
// @Success 200 {object} response.Envelope
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	if raw := c.Query("studentId"); raw != "" {
		studentID, err := queryID(c, "studentId")
		if err != nil {
			response.Error(c, err)
			return
		}
		enrollments, err := h.enrollments.ListByStudent(studentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, enrollments)
		return
	}
	if raw := c.Query("courseId"); raw != "" {
		courseID, err := queryID(c, "courseId")
		if err != nil {
			response.Error(c, err)
			return
		}
		enrollments, err := h.enrollments.ListByCourse(courseID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, enrollments)
		return
	}
	if raw := c.Query("status"); raw != "" {
		status := models.EnrollmentStatus(strings.ToUpper(raw))
		enrollments, err := h.enrollments.ListByStatus(status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, enrollments)
		return
	}
	response.JSON(c, http.StatusOK, h.enrollments.List())
}

// Get godoc
// @Summary Get enrollment detail
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	enrollment, err := h.enrollments.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment)
}

// Create godoc
// @Summary Enroll student in course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.EnrollRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrollment, err := h.enrollments.Enroll(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Complete godoc
// @Summary Mark enrollment completed
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 204
// @Router /enrollments/{id}/complete [patch]
func (h *EnrollmentHandler) Complete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.enrollments.Complete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Cancel godoc
// @Summary Cancel enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 204
// @Router /enrollments/{id}/cancel [patch]
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.enrollments.Cancel(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

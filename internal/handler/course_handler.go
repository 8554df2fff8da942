package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/averra-labs/trainhub/internal/service"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/response"
)

// CourseHandler exposes course catalog endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param name query string false "Case-insensitive name search"
// @Param minWeeks query int false "Minimum duration in weeks"
// @Param maxWeeks query int false "Maximum duration in weeks"
// @Param active query bool false "Only active courses"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		response.JSON(c, http.StatusOK, h.courses.SearchByName(name))
		return
	}
	if c.Query("minWeeks") != "" || c.Query("maxWeeks") != "" {
		minWeeks, err := queryInt(c, "minWeeks", 0)
		if err != nil {
			response.Error(c, err)
			return
		}
		maxWeeks, err := queryInt(c, "maxWeeks", minWeeks)
		if err != nil {
			response.Error(c, err)
			return
		}
		courses, err := h.courses.ListByDurationRange(minWeeks, maxWeeks)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, courses)
		return
	}
	if c.Query("active") == "true" {
		response.JSON(c, http.StatusOK, h.courses.ListActive())
		return
	}
	response.JSON(c, http.StatusOK, h.courses.List())
}

// Get godoc
// @Summary Get course detail
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update godoc
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.UpdateCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Update(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Activate godoc
// @Summary Reopen course for enrollment
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 204
// @Router /courses/{id}/activate [patch]
func (h *CourseHandler) Activate(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Activate(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Deactivate godoc
// @Summary Deactivate course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 204
// @Router /courses/{id} [delete]
// @Router /courses/{id}/deactivate [patch]
func (h *CourseHandler) Deactivate(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Deactivate(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averra-labs/trainhub/internal/service"
	"github.com/averra-labs/trainhub/pkg/idgen"
	"github.com/averra-labs/trainhub/pkg/response"
)

// CapacityHandler exposes id range capacity endpoints.
type CapacityHandler struct {
	capacity *service.CapacityService
}

// NewCapacityHandler constructs CapacityHandler.
func NewCapacityHandler(capacity *service.CapacityService) *CapacityHandler {
	return &CapacityHandler{capacity: capacity}
}

// Report godoc
// @Summary Id range capacity report
// @Tags Capacity
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /capacity [get]
func (h *CapacityHandler) Report(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.capacity.Report())
}

// Usage godoc
// @Summary Usage for a single id kind
// @Tags Capacity
// @Produce json
// @Param kind path string true "Id kind (person, student, course, enrollment, trainer)"
// @Success 200 {object} response.Envelope
// @Router /capacity/{kind} [get]
func (h *CapacityHandler) Usage(c *gin.Context) {
	usage, err := h.capacity.Usage(idgen.Kind(c.Param("kind")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, usage)
}

// Warnings godoc
// @Summary Ranges above the warn threshold
// @Tags Capacity
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /capacity/warnings [get]
func (h *CapacityHandler) Warnings(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"approaching": h.capacity.ApproachingCapacity(),
		"warnings":    h.capacity.Warnings(),
	})
}

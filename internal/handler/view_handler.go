package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
)

// ViewHandler serves the bundle each presentation view consumes.
type ViewHandler struct {
	service *service.ViewService
}

// NewViewHandler constructs a view handler.
func NewViewHandler(svc *service.ViewService) *ViewHandler {
	return &ViewHandler{service: svc}
}

// Modes godoc
// @Summary Navigable views
// @Tags Views
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /views [get]
func (h *ViewHandler) Modes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Modes())
}

// Render godoc
// @Summary Snapshot bundle for a view
// @Tags Views
// @Produce json
// @Param mode path string true "schedule | tracker | classes | tasks | reports | settings"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /views/{mode} [get]
func (h *ViewHandler) Render(c *gin.Context) {
	payload, err := h.service.Render(c.Request.Context(), models.ViewMode(c.Param("mode")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payload)
}

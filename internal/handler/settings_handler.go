package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
)

// SettingsHandler exposes settings and the theme preference.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs a settings handler.
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Get godoc
// @Summary Current settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Get(c.Request.Context()))
}

// Save godoc
// @Summary Overwrite settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateSettingsRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Router /settings [put]
func (h *SettingsHandler) Save(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	settings, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Theme godoc
// @Summary Dark/light preference
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /theme [get]
func (h *SettingsHandler) Theme(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.ThemeResponse{Mode: h.service.Theme(c.Request.Context())})
}

// SetTheme godoc
// @Summary Set dark/light preference
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.SetThemeRequest true "Theme payload"
// @Success 200 {object} response.Envelope
// @Router /theme [put]
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req dto.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	mode, err := h.service.SetTheme(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ThemeResponse{Mode: mode})
}

// ToggleTheme godoc
// @Summary Switch between dark and light
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.ThemeResponse{Mode: h.service.ToggleTheme(c.Request.Context())})
}

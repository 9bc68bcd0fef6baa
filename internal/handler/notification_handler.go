package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
)

// maxNotificationWait caps a long-poll on the queue.
const maxNotificationWait = 30 * time.Second

// NotificationHandler exposes the transient message queue.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler constructs a notification handler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List godoc
// @Summary Active notifications, oldest first
// @Description With wait set, blocks until the queue changes or the wait elapses.
// @Tags Notifications
// @Produce json
// @Param wait query string false "Long-poll duration, e.g. 10s (max 30s)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	raw := c.Query("wait")
	if raw == "" {
		response.JSON(c, http.StatusOK, h.service.List())
		return
	}
	wait, err := time.ParseDuration(raw)
	if err != nil || wait < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "wait must be a non-negative duration"))
		return
	}
	if wait > maxNotificationWait {
		wait = maxNotificationWait
	}

	changed := make(chan struct{}, 1)
	cancel := h.service.Subscribe(func([]models.AppNotification) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer cancel()

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-changed:
	case <-timer.C:
	case <-c.Request.Context().Done():
		return
	}
	response.JSON(c, http.StatusOK, h.service.List())
}

// Dismiss godoc
// @Summary Dismiss a notification
// @Tags Notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.service.Dismiss(c.Param("id"))
	response.NoContent(c)
}

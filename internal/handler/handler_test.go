package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
)

type unavailableStore struct{}

func (unavailableStore) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (unavailableStore) Save(context.Context, string, string) error {
	return errors.New("connection refused")
}

func newContainers(t *testing.T) *state.Containers {
	t.Helper()
	return state.Bootstrap(context.Background(), kvstore.NewMemoryStore(nil), models.NewValidator(), zap.NewNop())
}

func newContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestViewHandlerRender(t *testing.T) {
	containers := newContainers(t)
	reports := service.NewReportService(containers.Schedule, containers.Classes, containers.Tasks)
	h := NewViewHandler(service.NewViewService(containers, reports))

	c, w := newContext(http.MethodGet, "/views/settings", nil)
	c.Params = gin.Params{{Key: "mode", Value: "settings"}}
	h.Render(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeEnvelope(t, w).Error)

	c, w = newContext(http.MethodGet, "/views/unknown", nil)
	c.Params = gin.Params{{Key: "mode", Value: "unknown"}}
	h.Render(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestSettingsHandlerTheme(t *testing.T) {
	containers := newContainers(t)
	h := NewSettingsHandler(service.NewSettingsService(containers.Settings, containers.Theme, models.NewValidator(), nil, nil))

	c, w := newContext(http.MethodPut, "/theme", []byte(`{"mode":"dark"}`))
	h.SetTheme(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ThemeModeDark, containers.Theme.Get())

	c, w = newContext(http.MethodPut, "/theme", []byte(`{"mode":"sepia"}`))
	h.SetTheme(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ThemeModeDark, containers.Theme.Get())

	c, w = newContext(http.MethodPut, "/settings", []byte(`{"themeColor":"rose","teacherName":"أ. منى","schoolName":"مدرسة النور"}`))
	h.Save(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ThemeRose, containers.Settings.Get().ThemeColor)

	c, w = newContext(http.MethodPut, "/settings", []byte(`{`))
	h.Save(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler(t *testing.T) {
	notes := service.NewNotificationService(0, nil, nil, nil, nil)
	t.Cleanup(notes.Close)
	queued := notes.Notify("تمت إضافة المهمة", models.NotificationSuccess)
	h := NewNotificationHandler(notes)

	c, w := newContext(http.MethodGet, "/notifications", nil)
	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []models.AppNotification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, queued.ID, env.Data[0].ID)

	c, w = newContext(http.MethodDelete, "/notifications/"+queued.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: queued.ID}}
	h.Dismiss(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, notes.List())
}

func TestNotificationHandlerLongPoll(t *testing.T) {
	notes := service.NewNotificationService(0, nil, nil, nil, nil)
	t.Cleanup(notes.Close)
	h := NewNotificationHandler(notes)

	c, w := newContext(http.MethodGet, "/notifications?wait=5s", nil)
	done := make(chan struct{})
	start := time.Now()
	go func() {
		h.List(c)
		close(done)
	}()

	// Keep notifying until the waiter has subscribed and returned.
	func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				notes.Notify("تم حفظ الإعدادات", models.NotificationSuccess)
			}
		}
	}()
	assert.Less(t, time.Since(start), 4*time.Second)
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []models.AppNotification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data)
	assert.Equal(t, "تم حفظ الإعدادات", env.Data[0].Message)

	c, w = newContext(http.MethodGet, "/notifications?wait=10ms", nil)
	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, len(notes.List()))

	c, w = newContext(http.MethodGet, "/notifications?wait=soon", nil)
	h.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
}

func TestMetricsHandlerReady(t *testing.T) {
	metrics := service.NewMetricsService()

	c, w := newContext(http.MethodGet, "/ready", nil)
	NewMetricsHandler(metrics, kvstore.NewMemoryStore(nil)).Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/ready", nil)
	NewMetricsHandler(metrics, unavailableStore{}).Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-planner-api/internal/models"
)

func TestNotificationExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{}
	svc := NewNotificationService(4*time.Second, clock, nil, nil, nil)

	n := svc.Notify("تمت إضافة المهمة", models.NotificationSuccess)
	require.Len(t, svc.List(), 1)

	clock.Advance(3900 * time.Millisecond)
	require.Len(t, svc.List(), 1)
	assert.Equal(t, n.ID, svc.List()[0].ID)

	clock.Advance(200 * time.Millisecond)
	assert.Empty(t, svc.List())
}

func TestNotificationOrderAndUniqueIDs(t *testing.T) {
	clock := &fakeClock{}
	svc := NewNotificationService(0, clock, nil, nil, nil)

	first := svc.Notify("a", models.NotificationInfo)
	clock.Advance(time.Second)
	second := svc.Notify("b", "")
	third := svc.Notify("c", models.NotificationError)

	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.NotEqual(t, second.ID, third.ID)
	assert.Equal(t, models.NotificationSuccess, second.Type)
	assert.Contains(t, first.ID, PrefixNotification)

	clock.Advance(3 * time.Second)
	list = svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Message)
}

func TestNotificationDismissIsIdempotent(t *testing.T) {
	clock := &fakeClock{}
	metrics := NewMetricsService()
	svc := NewNotificationService(time.Second, clock, nil, metrics, nil)

	keep := svc.Notify("keep", models.NotificationInfo)
	drop := svc.Notify("drop", models.NotificationInfo)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.activeNotifications))

	svc.Dismiss(drop.ID)
	svc.Dismiss(drop.ID)
	svc.Dismiss("ntf_missing")

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
	assert.Equal(t, 1, clock.pending())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.activeNotifications))

	clock.Advance(time.Second)
	assert.Empty(t, svc.List())
	assert.Equal(t, 0, clock.pending())
}

func TestNotificationSubscribeSeesChanges(t *testing.T) {
	clock := &fakeClock{}
	svc := NewNotificationService(time.Second, clock, nil, nil, nil)

	var lengths []int
	cancel := svc.Subscribe(func(list []models.AppNotification) { lengths = append(lengths, len(list)) })
	defer cancel()

	svc.Notify("x", models.NotificationInfo)
	svc.Notify("y", models.NotificationInfo)
	clock.Advance(time.Second)

	assert.Equal(t, []int{1, 2, 1, 0}, lengths)
}

func TestNotificationCloseStopsTimers(t *testing.T) {
	clock := &fakeClock{}
	svc := NewNotificationService(time.Second, clock, nil, nil, nil)
	svc.Notify("x", models.NotificationInfo)

	svc.Close()
	assert.Empty(t, svc.List())
	assert.Equal(t, 0, clock.pending())
}

func TestNotificationWithSystemClock(t *testing.T) {
	svc := NewNotificationService(20*time.Millisecond, nil, nil, nil, nil)
	svc.Notify("x", models.NotificationInfo)

	assert.Eventually(t, func() bool { return len(svc.List()) == 0 }, time.Second, 5*time.Millisecond)
}

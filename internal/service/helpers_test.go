package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs every callback that came due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type harness struct {
	store       *kvstore.MemoryStore
	containers  *state.Containers
	clock       *fakeClock
	metrics     *MetricsService
	notes       *NotificationService
	persistence *PersistenceService
	schedule    *ScheduleService
	classes     *ClassService
	students    *StudentService
	tasks       *TaskService
	settings    *SettingsService
	reports     *ReportService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := kvstore.NewMemoryStore(nil)
	return newHarnessWithStore(t, store, store)
}

func newHarnessWithStore(t *testing.T, mem *kvstore.MemoryStore, store kvstore.Store) *harness {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	validate := models.NewValidator()

	containers := state.Bootstrap(ctx, store, validate, logger)
	clock := &fakeClock{}
	metrics := NewMetricsService()
	ids := NewIDGenerator(nil)
	notes := NewNotificationService(DefaultNotificationTTL, clock, ids, metrics, logger)
	persistence := NewPersistenceService(store, containers, notes, metrics, logger)
	persistence.Start(ctx)
	t.Cleanup(persistence.Stop)
	t.Cleanup(notes.Close)

	return &harness{
		store:       mem,
		containers:  containers,
		clock:       clock,
		metrics:     metrics,
		notes:       notes,
		persistence: persistence,
		schedule:    NewScheduleService(containers.Schedule, notes, validate, metrics, logger),
		classes:     NewClassService(containers.Classes, notes, ids, validate, metrics, logger),
		students:    NewStudentService(containers.Classes, notes, ids, validate, metrics, logger),
		tasks:       NewTaskService(containers.Tasks, notes, ids, validate, metrics, logger),
		settings:    NewSettingsService(containers.Settings, containers.Theme, validate, metrics, logger),
		reports:     NewReportService(containers.Schedule, containers.Classes, containers.Tasks),
	}
}

func (h *harness) messages() []string {
	var out []string
	for _, n := range h.notes.List() {
		out = append(out, n.Message)
	}
	return out
}

func (h *harness) lastNotification() models.AppNotification {
	list := h.notes.List()
	if len(list) == 0 {
		return models.AppNotification{}
	}
	return list[len(list)-1]
}

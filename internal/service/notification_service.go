package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
)

// DefaultNotificationTTL is how long a notification stays queued.
const DefaultNotificationTTL = 4 * time.Second

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NotificationService keeps the ordered queue of transient messages. Each
// entry is removed after the TTL unless dismissed first.
type NotificationService struct {
	mu     sync.Mutex
	queue  *state.Container[[]models.AppNotification]
	timers map[string]Timer

	ttl     time.Duration
	clock   Clock
	ids     *IDGenerator
	metrics *MetricsService
	logger  *zap.Logger
}

// NewNotificationService constructs the queue. A nil clock uses wall time.
func NewNotificationService(ttl time.Duration, clock Clock, ids *IDGenerator, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if clock == nil {
		clock = systemClock{}
	}
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		queue:   state.NewContainer[[]models.AppNotification]("notifications", nil),
		timers:  make(map[string]Timer),
		ttl:     ttl,
		clock:   clock,
		ids:     ids,
		metrics: metrics,
		logger:  logger,
	}
}

// Notify appends a message and schedules its expiry.
func (s *NotificationService) Notify(message string, kind models.NotificationType) models.AppNotification {
	if kind == "" {
		kind = models.NotificationSuccess
	}
	n := models.AppNotification{ID: s.ids.New(PrefixNotification), Message: message, Type: kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := n.ID
	s.timers[id] = s.clock.AfterFunc(s.ttl, func() { s.remove(id) })
	next := s.queue.Update(func(current []models.AppNotification) []models.AppNotification {
		out := make([]models.AppNotification, 0, len(current)+1)
		out = append(out, current...)
		return append(out, n)
	})
	s.metrics.SetActiveNotifications(len(next))
	s.logger.Debug("notification queued", zap.String("id", id), zap.String("type", string(kind)))
	return n
}

// Dismiss removes a notification early. Unknown ids are ignored.
func (s *NotificationService) Dismiss(id string) {
	s.remove(id)
}

// List returns the queued notifications oldest first.
func (s *NotificationService) List() []models.AppNotification {
	current := s.queue.Get()
	out := make([]models.AppNotification, len(current))
	copy(out, current)
	return out
}

// Subscribe registers fn for every queue change.
func (s *NotificationService) Subscribe(fn func([]models.AppNotification)) func() {
	return s.queue.Subscribe(fn)
}

// Close cancels every pending expiry and empties the queue.
func (s *NotificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.queue.Set(nil)
	s.metrics.SetActiveNotifications(0)
}

func (s *NotificationService) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return
	}
	t.Stop()
	delete(s.timers, id)

	next := s.queue.Update(func(current []models.AppNotification) []models.AppNotification {
		out := make([]models.AppNotification, 0, len(current))
		for _, n := range current {
			if n.ID != id {
				out = append(out, n)
			}
		}
		return out
	})
	s.metrics.SetActiveNotifications(len(next))
}

package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
)

const defaultWriteTimeout = 5 * time.Second

// PersistenceService mirrors every container into the store. Each snapshot
// is written whole, synchronously, in the order the containers change.
type PersistenceService struct {
	store      kvstore.Store
	containers *state.Containers
	notifier   notifier
	metrics    *MetricsService
	logger     *zap.Logger
	timeout    time.Duration

	mu      sync.Mutex
	cancels []func()
}

// NewPersistenceService constructs the synchronizer. Call Start to attach it.
func NewPersistenceService(store kvstore.Store, containers *state.Containers, notifier notifier, metrics *MetricsService, logger *zap.Logger) *PersistenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersistenceService{
		store:      store,
		containers: containers,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
		timeout:    defaultWriteTimeout,
	}
}

// Start subscribes to every container and writes the current snapshots,
// which stores defaults on a first run.
func (s *PersistenceService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cancels) > 0 {
		return
	}
	c := s.containers
	s.cancels = []func(){
		watch(ctx, s, c.Schedule, c.Codecs.Schedule),
		watch(ctx, s, c.Classes, c.Codecs.Classes),
		watch(ctx, s, c.Tasks, c.Codecs.Tasks),
		watch(ctx, s, c.Settings, c.Codecs.Settings),
		watch(ctx, s, c.Theme, c.Codecs.Theme),
	}
}

// Stop detaches from the containers. Later changes are no longer written.
func (s *PersistenceService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

func watch[T any](ctx context.Context, s *PersistenceService, c *state.Container[T], codec state.Codec[T]) func() {
	key := c.Name()
	return c.Watch(func(value T) {
		raw, err := codec.Encode(value)
		if err != nil {
			s.fail(key, 0, err)
			return
		}
		s.write(ctx, key, raw)
	})
}

func (s *PersistenceService) write(ctx context.Context, key, raw string) {
	writeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.store.Save(writeCtx, key, raw)
	elapsed := time.Since(start)
	if err != nil {
		s.fail(key, elapsed, err)
		return
	}
	s.metrics.ObserveStoreWrite(key, StoreWriteOK, elapsed)
	s.logger.Debug("snapshot saved", zap.String("key", key), zap.Int("bytes", len(raw)), zap.Duration("latency", elapsed))
}

func (s *PersistenceService) fail(key string, elapsed time.Duration, err error) {
	s.metrics.ObserveStoreWrite(key, StoreWriteError, elapsed)
	s.logger.Error("snapshot save failed", zap.String("key", key), zap.Error(err))
	if s.notifier != nil {
		s.notifier.Notify(msgSaveFailed, models.NotificationError)
	}
}

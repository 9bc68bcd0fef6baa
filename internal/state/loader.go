package state

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
)

// Source tells where an initial snapshot came from.
type Source string

const (
	SourceStore       Source = "store"
	SourceMissing     Source = "default_missing"
	SourceInvalid     Source = "default_invalid"
	SourceUnreadable  Source = "default_unreadable"
	SourceUndecodable Source = "default_undecodable"
)

// Load reads key from store and decodes it, substituting fallback() when the
// key is absent, the store fails, the value does not parse, or it fails the
// codec's check. It never returns an error.
func Load[T any](ctx context.Context, store kvstore.Store, key string, codec Codec[T], fallback func() T) (T, Source, error) {
	raw, found, err := store.Load(ctx, key)
	if err != nil {
		return fallback(), SourceUnreadable, err
	}
	if !found {
		return fallback(), SourceMissing, nil
	}
	value, err := codec.Decode(raw)
	if err != nil {
		return fallback(), SourceUndecodable, err
	}
	if codec.Check != nil {
		if err := codec.Check(value); err != nil {
			return fallback(), SourceInvalid, err
		}
	}
	return value, SourceStore, nil
}

// Containers is the process-wide state owner. It is built once at startup and
// handed to services explicitly.
type Containers struct {
	Schedule *Container[models.Schedule]
	Classes  *Container[models.Classes]
	Tasks    *Container[models.Tasks]
	Settings *Container[models.AppSettings]
	Theme    *Container[models.ThemeMode]

	Codecs Codecs
}

// Bootstrap initializes every container from store, falling back to the
// compiled-in defaults. Fallbacks are logged, never returned.
func Bootstrap(ctx context.Context, store kvstore.Store, validate *validator.Validate, logger *zap.Logger) *Containers {
	if logger == nil {
		logger = zap.NewNop()
	}
	codecs := NewCodecs(validate)

	return &Containers{
		Schedule: newLoaded(ctx, store, KeySchedule, codecs.Schedule, DefaultSchedule, logger),
		Classes:  newLoaded(ctx, store, KeyClasses, codecs.Classes, DefaultClasses, logger),
		Tasks:    newLoaded(ctx, store, KeyTasks, codecs.Tasks, DefaultTasks, logger),
		Settings: newLoaded(ctx, store, KeySettings, codecs.Settings, DefaultSettings, logger),
		Theme:    newLoaded(ctx, store, KeyTheme, codecs.Theme, DefaultTheme, logger),
		Codecs:   codecs,
	}
}

func newLoaded[T any](ctx context.Context, store kvstore.Store, key string, codec Codec[T], fallback func() T, logger *zap.Logger) *Container[T] {
	value, source, err := Load(ctx, store, key, codec, fallback)
	switch source {
	case SourceStore:
		logger.Debug("state loaded", zap.String("key", key))
	case SourceMissing:
		logger.Info("state missing, using defaults", zap.String("key", key))
	default:
		logger.Warn("state unusable, using defaults", zap.String("key", key), zap.String("source", string(source)), zap.Error(err))
	}
	return NewContainer(key, value)
}

package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
)

type notifier interface {
	Notify(message string, kind models.NotificationType) models.AppNotification
}

// ScheduleService edits the weekly grid.
type ScheduleService struct {
	schedule  *state.Container[models.Schedule]
	notifier  notifier
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(schedule *state.Container[models.Schedule], notifier notifier, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = models.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{schedule: schedule, notifier: notifier, validator: validate, metrics: metrics, logger: logger}
}

// Get returns the current grid.
func (s *ScheduleService) Get(ctx context.Context) models.Schedule {
	return s.schedule.Get()
}

// UpdateSlot sets the class name of the (day, period) slot. A slot that does
// not exist leaves the grid value-equal.
func (s *ScheduleService) UpdateSlot(ctx context.Context, req dto.UpdateSlotRequest) (models.Schedule, error) {
	req.ClassName = strings.TrimSpace(req.ClassName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule slot")
	}

	next := s.schedule.Update(func(current models.Schedule) models.Schedule {
		return assignSlot(current, req.Day, req.Period, req.ClassName)
	})
	s.metrics.RecordMutation(opUpdateSlot)
	s.logger.Debug("schedule slot updated", zap.String("day", string(req.Day)), zap.Int("period", req.Period))
	s.notifier.Notify(msgScheduleUpdated, models.NotificationSuccess)
	return next, nil
}

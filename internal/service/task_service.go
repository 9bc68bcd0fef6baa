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

// TaskService manages the daily task list.
type TaskService struct {
	tasks     *state.Container[models.Tasks]
	notifier  notifier
	ids       *IDGenerator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(tasks *state.Container[models.Tasks], notifier notifier, ids *IDGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *TaskService {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{tasks: tasks, notifier: notifier, ids: ids, validator: validate, metrics: metrics, logger: logger}
}

// List returns tasks in insertion order.
func (s *TaskService) List(ctx context.Context) models.Tasks {
	return s.tasks.Get()
}

// Create appends a pending task.
func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (*models.Task, error) {
	req.Text = strings.TrimSpace(req.Text)
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) == "" {
		req.DueDate = nil
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}

	task := models.Task{
		ID:       s.ids.New(PrefixTask),
		Text:     req.Text,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}
	s.tasks.Update(func(current models.Tasks) models.Tasks {
		return appendTask(current, task)
	})
	s.metrics.RecordMutation(opAddTask)
	s.notifier.Notify(msgTaskAdded, models.NotificationSuccess)
	return &task, nil
}

// Toggle flips the completed flag. Toggling twice restores the original list.
func (s *TaskService) Toggle(ctx context.Context, id string) models.Tasks {
	next := s.tasks.Update(func(current models.Tasks) models.Tasks {
		return toggleTask(current, id)
	})
	s.metrics.RecordMutation(opToggleTask)
	return next
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) models.Tasks {
	next := s.tasks.Update(func(current models.Tasks) models.Tasks {
		return removeTask(current, id)
	})
	s.metrics.RecordMutation(opDeleteTask)
	s.notifier.Notify(msgTaskRemoved, models.NotificationInfo)
	return next
}

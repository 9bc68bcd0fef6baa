package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
)

// ClassService coordinates class operations.
type ClassService struct {
	classes   *state.Container[models.Classes]
	notifier  notifier
	ids       *IDGenerator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(classes *state.Container[models.Classes], notifier notifier, ids *IDGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ClassService {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{classes: classes, notifier: notifier, ids: ids, validator: validate, metrics: metrics, logger: logger}
}

// List returns all classes in creation order.
func (s *ClassService) List(ctx context.Context) models.Classes {
	return s.classes.Get()
}

// Get returns one class by id.
func (s *ClassService) Get(ctx context.Context, id string) (*models.ClassGroup, error) {
	cls, ok := s.classes.Get().Find(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return &cls, nil
}

// Create appends an empty class.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*models.ClassGroup, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class := models.ClassGroup{ID: s.ids.New(PrefixClass), Name: req.Name, Students: []models.Student{}}
	s.classes.Update(func(current models.Classes) models.Classes {
		return appendClass(current, class)
	})
	s.metrics.RecordMutation(opAddClass)
	s.logger.Info("class created", zap.String("class_id", class.ID))
	s.notifier.Notify(fmt.Sprintf(msgClassAdded, class.Name), models.NotificationSuccess)
	return &class, nil
}

// Delete removes a class together with its students. Schedule slots that
// reference the class by name are left as they are.
func (s *ClassService) Delete(ctx context.Context, id string) models.Classes {
	var name string
	next := s.classes.Update(func(current models.Classes) models.Classes {
		var out models.Classes
		out, name = removeClass(current, id)
		return out
	})
	s.metrics.RecordMutation(opDeleteClass)
	s.logger.Info("class deleted", zap.String("class_id", id), zap.Bool("found", name != ""))
	s.notifier.Notify(fmt.Sprintf(msgClassDeleted, name), models.NotificationInfo)
	return next
}

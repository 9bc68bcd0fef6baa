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

// StudentService edits the rosters held inside the classes snapshot.
type StudentService struct {
	classes   *state.Container[models.Classes]
	notifier  notifier
	ids       *IDGenerator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(classes *state.Container[models.Classes], notifier notifier, ids *IDGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{classes: classes, notifier: notifier, ids: ids, validator: validate, metrics: metrics, logger: logger}
}

// Add appends one student to classID. An unknown class leaves the rosters unchanged.
func (s *StudentService) Add(ctx context.Context, classID string, req dto.AddStudentRequest) (*models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student := models.NewStudent(s.ids.New(PrefixStudent), req.Name)
	s.classes.Update(func(current models.Classes) models.Classes {
		return appendStudents(current, classID, student)
	})
	s.metrics.RecordMutation(opAddStudent)
	s.notifier.Notify(fmt.Sprintf(msgStudentAdded, student.Name), models.NotificationSuccess)
	return &student, nil
}

// Import appends one student per name, in order, as a single transition.
func (s *StudentService) Import(ctx context.Context, classID string, req dto.ImportStudentsRequest) ([]models.Student, error) {
	names := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	req.Names = names
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}

	ids := s.ids.Batch(PrefixImportedStudent, len(names))
	students := make([]models.Student, len(names))
	for i, name := range names {
		students[i] = models.NewStudent(ids[i], name)
	}

	s.classes.Update(func(current models.Classes) models.Classes {
		return appendStudents(current, classID, students...)
	})
	s.metrics.RecordMutation(opImportStudents)
	s.logger.Info("students imported", zap.String("class_id", classID), zap.Int("count", len(students)))
	s.notifier.Notify(fmt.Sprintf(msgStudentsImported, len(students)), models.NotificationSuccess)
	return students, nil
}

// Delete removes a student from classID.
func (s *StudentService) Delete(ctx context.Context, classID, studentID string) models.Classes {
	next := s.classes.Update(func(current models.Classes) models.Classes {
		return removeStudent(current, classID, studentID)
	})
	s.metrics.RecordMutation(opDeleteStudent)
	s.notifier.Notify(msgStudentDeleted, models.NotificationInfo)
	return next
}

// Update replaces the student record with the same id. It emits no notification.
func (s *StudentService) Update(ctx context.Context, classID, studentID string, req dto.UpdateStudentRequest) (*models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	attendance := req.Attendance
	if attendance == nil {
		attendance = map[string]models.AttendanceStatus{}
	}
	student := models.Student{
		ID:                 studentID,
		Name:               req.Name,
		Notes:              req.Notes,
		Attendance:         attendance,
		ParticipationScore: req.ParticipationScore,
	}
	s.classes.Update(func(current models.Classes) models.Classes {
		return replaceStudent(current, classID, student)
	})
	s.metrics.RecordMutation(opUpdateStudent)
	return &student, nil
}

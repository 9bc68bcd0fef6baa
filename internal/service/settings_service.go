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

// SettingsService owns the settings record and the theme preference.
type SettingsService struct {
	settings  *state.Container[models.AppSettings]
	theme     *state.Container[models.ThemeMode]
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(settings *state.Container[models.AppSettings], theme *state.Container[models.ThemeMode], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = models.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{settings: settings, theme: theme, validator: validate, metrics: metrics, logger: logger}
}

// Get returns the settings record.
func (s *SettingsService) Get(ctx context.Context) models.AppSettings {
	return s.settings.Get()
}

// Save overwrites the settings record wholesale.
func (s *SettingsService) Save(ctx context.Context, req dto.UpdateSettingsRequest) (models.AppSettings, error) {
	req.TeacherName = strings.TrimSpace(req.TeacherName)
	req.SchoolName = strings.TrimSpace(req.SchoolName)
	if err := s.validator.Struct(req); err != nil {
		return models.AppSettings{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}

	next := models.AppSettings{ThemeColor: req.ThemeColor, TeacherName: req.TeacherName, SchoolName: req.SchoolName}
	s.settings.Set(next)
	s.metrics.RecordMutation(opSaveSettings)
	s.logger.Info("settings saved", zap.String("theme_color", string(next.ThemeColor)))
	return next, nil
}

// Theme returns the dark/light preference.
func (s *SettingsService) Theme(ctx context.Context) models.ThemeMode {
	return s.theme.Get()
}

// SetTheme stores the dark/light preference.
func (s *SettingsService) SetTheme(ctx context.Context, req dto.SetThemeRequest) (models.ThemeMode, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid theme mode")
	}
	s.theme.Set(req.Mode)
	s.metrics.RecordMutation(opSetTheme)
	return req.Mode, nil
}

// ToggleTheme switches between dark and light.
func (s *SettingsService) ToggleTheme(ctx context.Context) models.ThemeMode {
	next := s.theme.Update(func(current models.ThemeMode) models.ThemeMode {
		return current.Toggle()
	})
	s.metrics.RecordMutation(opSetTheme)
	return next
}

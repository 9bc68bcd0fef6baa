package dto

import "github.com/noah-isme/teacher-planner-api/internal/models"

// UpdateSettingsRequest overwrites the settings record.
type UpdateSettingsRequest struct {
	ThemeColor  models.ThemeColor `json:"themeColor" validate:"required,oneof=emerald blue purple orange rose"`
	TeacherName string            `json:"teacherName" validate:"max=120"`
	SchoolName  string            `json:"schoolName" validate:"max=120"`
}

// SetThemeRequest selects dark or light mode.
type SetThemeRequest struct {
	Mode models.ThemeMode `json:"mode" validate:"required,oneof=dark light"`
}

// ThemeResponse wraps the bare theme value.
type ThemeResponse struct {
	Mode models.ThemeMode `json:"mode"`
}

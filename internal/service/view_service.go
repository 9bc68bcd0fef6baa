package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
)

// ViewPayload is what a presentation component receives: the snapshots it
// renders and the mutations it may invoke. Collections the mode does not
// render stay nil and encode as null; rendered ones are never nil.
type ViewPayload struct {
	Mode     models.ViewMode     `json:"mode"`
	Title    string              `json:"title"`
	Schedule models.Schedule     `json:"schedule"`
	Classes  models.Classes      `json:"classes"`
	Tasks    models.Tasks        `json:"tasks"`
	Settings *models.AppSettings `json:"settings,omitempty"`
	Report   *models.Report      `json:"report,omitempty"`
	Actions  []string            `json:"actions"`
}

var viewTitles = map[models.ViewMode]string{
	models.ViewSchedule: "الجدول الدراسي",
	models.ViewTracker:  "متابعة الطلاب",
	models.ViewClasses:  "إدارة الفصول",
	models.ViewTasks:    "المهام اليومية",
	models.ViewReports:  "التقارير",
	models.ViewSettings: "الإعدادات",
}

var viewActions = map[models.ViewMode][]string{
	models.ViewSchedule: {opUpdateSlot, "notify"},
	models.ViewTracker:  {opUpdateStudent, "notify"},
	models.ViewClasses:  {opAddClass, opDeleteClass, opAddStudent, opImportStudents, opDeleteStudent},
	models.ViewTasks:    {opAddTask, opToggleTask, opDeleteTask},
	models.ViewReports:  {},
	models.ViewSettings: {opSaveSettings},
}

// ViewService selects the snapshot bundle for a view mode.
type ViewService struct {
	containers *state.Containers
	reports    *ReportService
}

// NewViewService constructs a ViewService.
func NewViewService(containers *state.Containers, reports *ReportService) *ViewService {
	return &ViewService{containers: containers, reports: reports}
}

// Modes lists every view mode in navigation order.
func (s *ViewService) Modes() []models.ViewMode {
	out := make([]models.ViewMode, len(models.ViewModes))
	copy(out, models.ViewModes)
	return out
}

// Render returns the payload for mode.
func (s *ViewService) Render(ctx context.Context, mode models.ViewMode) (*ViewPayload, error) {
	title, ok := viewTitles[mode]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown view %q", mode))
	}
	payload := &ViewPayload{Mode: mode, Title: title, Actions: append([]string{}, viewActions[mode]...)}

	c := s.containers
	switch mode {
	case models.ViewSchedule:
		payload.Schedule = nonNil(c.Schedule.Get())
		payload.Classes = nonNil(c.Classes.Get())
	case models.ViewTracker, models.ViewClasses:
		payload.Classes = nonNil(c.Classes.Get())
	case models.ViewTasks:
		payload.Tasks = nonNil(c.Tasks.Get())
	case models.ViewReports:
		report := s.reports.Build(ctx)
		payload.Report = &report
	case models.ViewSettings:
		settings := c.Settings.Get()
		payload.Settings = &settings
	}
	return payload, nil
}

func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}

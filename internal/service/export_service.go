package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/export"
)

// Export kinds and formats.
const (
	ExportSchedule = "schedule"
	ExportRoster   = "roster"
	ExportReport   = "report"

	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	Enabled     bool
	PDFFontPath string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders snapshots into CSV or PDF downloads.
type ExportService struct {
	schedule  *state.Container[models.Schedule]
	classes   *state.Container[models.Classes]
	reports   *ReportService
	renderers map[string]renderer
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportConfig
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(schedule *state.Container[models.Schedule], classes *state.Container[models.Classes], reports *ReportService, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		schedule: schedule,
		classes:  classes,
		reports:  reports,
		renderers: map[string]renderer{
			FormatCSV: export.NewCSVExporter(),
			FormatPDF: export.NewPDFExporter(cfg.PDFFontPath),
		},
		validator: models.NewValidator(),
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Enabled reports whether exports are switched on.
func (s *ExportService) Enabled() bool {
	return s.cfg.Enabled
}

// Generate renders the requested dataset. Format defaults to CSV.
func (s *ExportService) Generate(ctx context.Context, query dto.ExportQuery) (*ExportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled")
	}
	query.Kind = strings.ToLower(strings.TrimSpace(query.Kind))
	query.Format = strings.ToLower(strings.TrimSpace(query.Format))
	if query.Format == "" {
		query.Format = FormatCSV
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	r, ok := s.renderers[query.Format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported format %s", query.Format))
	}

	dataset, err := s.buildDataset(ctx, query)
	if err != nil {
		return nil, err
	}
	payload, err := r.Render(dataset)
	if err != nil {
		s.logger.Error("export render failed", zap.String("kind", query.Kind), zap.String("format", query.Format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    s.buildFilename(query),
		ContentType: r.ContentType(),
		Data:        payload,
	}, nil
}

func (s *ExportService) buildFilename(query dto.ExportQuery) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	name := query.Kind
	if query.Kind == ExportRoster {
		name = fmt.Sprintf("%s_%s", name, sanitizeFilename(query.ClassID))
	}
	return fmt.Sprintf("%s_%s.%s", name, timestamp, query.Format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func (s *ExportService) buildDataset(ctx context.Context, query dto.ExportQuery) (export.Dataset, error) {
	switch query.Kind {
	case ExportSchedule:
		return scheduleDataset(s.schedule.Get()), nil
	case ExportRoster:
		cls, ok := s.classes.Get().Find(query.ClassID)
		if !ok {
			return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return rosterDataset(cls), nil
	case ExportReport:
		return reportDataset(s.reports.Build(ctx)), nil
	default:
		return export.Dataset{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export kind %s", query.Kind))
	}
}

// scheduleDataset lays the grid out with one row per period and one column per day.
func scheduleDataset(schedule models.Schedule) export.Dataset {
	headers := make([]string, 0, len(models.SchoolDays)+1)
	headers = append(headers, "الحصة")
	column := make(map[models.DayOfWeek]int, len(models.SchoolDays))
	for i, day := range models.SchoolDays {
		headers = append(headers, string(day))
		column[day] = i + 1
	}

	rows := make([][]string, models.PeriodsPerDay)
	for p := range rows {
		rows[p] = make([]string, len(headers))
		rows[p][0] = strconv.Itoa(p + 1)
	}
	for _, slot := range schedule {
		col, ok := column[slot.Day]
		if !ok || slot.Period < 1 || slot.Period > models.PeriodsPerDay {
			continue
		}
		rows[slot.Period-1][col] = slot.ClassName
	}
	return export.Dataset{Title: "الجدول الدراسي", Headers: headers, Rows: rows}
}

func rosterDataset(cls models.ClassGroup) export.Dataset {
	rows := make([][]string, 0, len(cls.Students))
	for i, st := range cls.Students {
		present := 0
		for _, status := range st.Attendance {
			if status == models.AttendancePresent {
				present++
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			st.Name,
			strconv.Itoa(st.ParticipationScore),
			fmt.Sprintf("%d/%d", present, len(st.Attendance)),
			st.Notes,
		})
	}
	return export.Dataset{
		Title:   cls.Name,
		Headers: []string{"#", "الاسم", "المشاركة", "الحضور", "ملاحظات"},
		Rows:    rows,
	}
}

func reportDataset(report models.Report) export.Dataset {
	rows := make([][]string, 0, len(report.Classes))
	for _, cls := range report.Classes {
		rows = append(rows, []string{
			cls.ClassName,
			strconv.Itoa(cls.StudentCount),
			strconv.FormatFloat(cls.AverageParticipation, 'f', 2, 64),
			strconv.Itoa(cls.WeeklyPeriods),
		})
	}
	return export.Dataset{
		Title:   "التقارير",
		Headers: []string{"الفصل", "عدد الطلاب", "متوسط المشاركة", "الحصص الأسبوعية"},
		Rows:    rows,
	}
}

package service

import (
	"context"
	"math"
	"time"

	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
)

// ReportService derives the dashboard projection from the live snapshots.
type ReportService struct {
	schedule *state.Container[models.Schedule]
	classes  *state.Container[models.Classes]
	tasks    *state.Container[models.Tasks]
	now      func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(schedule *state.Container[models.Schedule], classes *state.Container[models.Classes], tasks *state.Container[models.Tasks]) *ReportService {
	return &ReportService{schedule: schedule, classes: classes, tasks: tasks, now: time.Now}
}

// Build computes the report. It never mutates state.
func (s *ReportService) Build(ctx context.Context) models.Report {
	return BuildReport(s.classes.Get(), s.schedule.Get(), s.tasks.Get(), s.now().UTC())
}

// BuildReport is the pure projection behind Build.
func BuildReport(classes models.Classes, schedule models.Schedule, tasks models.Tasks, generatedAt time.Time) models.Report {
	periodsByName := make(map[string]int)
	assigned := 0
	for _, slot := range schedule {
		if slot.ClassName == "" {
			continue
		}
		assigned++
		periodsByName[slot.ClassName]++
	}

	report := models.Report{
		Classes:           make([]models.ClassReport, 0, len(classes)),
		AssignedPeriods:   assigned,
		FreePeriods:       len(schedule) - assigned,
		UnknownClassNames: []string{},
		GeneratedAt:       generatedAt,
	}

	known := make(map[string]struct{}, len(classes))
	for _, cls := range classes {
		known[cls.Name] = struct{}{}
		report.Classes = append(report.Classes, classReport(cls, periodsByName[cls.Name]))
		report.TotalStudents += len(cls.Students)
	}

	seen := make(map[string]struct{})
	for _, slot := range schedule {
		if slot.ClassName == "" {
			continue
		}
		if _, ok := known[slot.ClassName]; ok {
			continue
		}
		if _, dup := seen[slot.ClassName]; dup {
			continue
		}
		seen[slot.ClassName] = struct{}{}
		report.UnknownClassNames = append(report.UnknownClassNames, slot.ClassName)
	}

	report.Tasks = summarizeTasks(tasks)
	return report
}

func classReport(cls models.ClassGroup, weeklyPeriods int) models.ClassReport {
	out := models.ClassReport{
		ClassID:       cls.ID,
		ClassName:     cls.Name,
		StudentCount:  len(cls.Students),
		Attendance:    map[models.AttendanceStatus]int{},
		WeeklyPeriods: weeklyPeriods,
	}
	if len(cls.Students) == 0 {
		return out
	}
	total := 0
	for _, st := range cls.Students {
		total += st.ParticipationScore
		for _, status := range st.Attendance {
			out.Attendance[status]++
		}
	}
	avg := float64(total) / float64(len(cls.Students))
	out.AverageParticipation = math.Round(avg*100) / 100
	return out
}

func summarizeTasks(tasks models.Tasks) models.TaskSummary {
	summary := models.TaskSummary{
		Total:      len(tasks),
		ByPriority: map[models.TaskPriority]int{},
	}
	for _, t := range tasks {
		if t.Completed {
			summary.Completed++
		}
		summary.ByPriority[t.Priority]++
	}
	summary.Pending = summary.Total - summary.Completed
	return summary
}

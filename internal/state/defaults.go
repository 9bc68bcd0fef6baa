package state

import (
	"fmt"

	"github.com/noah-isme/teacher-planner-api/internal/models"
)

// DefaultSchedule is the empty weekly grid: every school day × every period.
func DefaultSchedule() models.Schedule {
	schedule := make(models.Schedule, 0, len(models.SchoolDays)*models.PeriodsPerDay)
	for dayIdx, day := range models.SchoolDays {
		for period := 1; period <= models.PeriodsPerDay; period++ {
			schedule = append(schedule, models.ScheduleSlot{
				ID:     fmt.Sprintf("slot_%d_%d", dayIdx+1, period),
				Day:    day,
				Period: period,
			})
		}
	}
	return schedule
}

// DefaultClasses seeds two sample classes for a first run.
func DefaultClasses() models.Classes {
	student := func(id, name, notes string, score int) models.Student {
		s := models.NewStudent(id, name)
		s.Notes = notes
		s.ParticipationScore = score
		return s
	}
	return models.Classes{
		{
			ID:   "c1",
			Name: "الصف الأول - أ",
			Students: []models.Student{
				student("s1", "أحمد محمد", "", 8),
				student("s2", "خالد علي", "يحتاج متابعة في القراءة", 6),
				student("s3", "سارة عبدالله", "ممتازة", 10),
			},
		},
		{
			ID:   "c2",
			Name: "الصف الثاني - ب",
			Students: []models.Student{
				student("s4", "فهد عمر", "", 7),
				student("s5", "نورة سعيد", "", 9),
			},
		},
	}
}

// DefaultTasks seeds a single reminder.
func DefaultTasks() models.Tasks {
	return models.Tasks{
		{ID: "1", Text: "تحضير درس الرياضيات ليوم الأحد", Priority: models.PriorityHigh},
	}
}

// DefaultSettings is the out-of-the-box profile.
func DefaultSettings() models.AppSettings {
	return models.AppSettings{
		ThemeColor:  models.ThemeEmerald,
		TeacherName: "المعلم الذكي",
		SchoolName:  "مدرستي المتميزة",
	}
}

// DefaultTheme is the light mode.
func DefaultTheme() models.ThemeMode {
	return models.ThemeModeLight
}

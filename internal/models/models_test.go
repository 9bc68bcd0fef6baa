package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOfWeekValid(t *testing.T) {
	for _, day := range SchoolDays {
		assert.True(t, day.Valid(), string(day))
	}
	assert.False(t, DayOfWeek("الجمعة").Valid())
	assert.False(t, DayOfWeek("").Valid())
}

func TestValidatorSchoolDay(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(ScheduleSlot{ID: "slot-1", Day: DayMonday, Period: 3}))
	assert.Error(t, v.Struct(ScheduleSlot{ID: "slot-1", Day: "Friday", Period: 3}))
	assert.Error(t, v.Struct(ScheduleSlot{ID: "slot-1", Day: DayMonday, Period: 8}))
}

func TestThemeModeToggle(t *testing.T) {
	assert.Equal(t, ThemeModeDark, ThemeModeLight.Toggle())
	assert.Equal(t, ThemeModeLight, ThemeModeDark.Toggle())
	assert.Equal(t, ThemeModeDark, ThemeMode("").Toggle())
}

func TestClassesFind(t *testing.T) {
	classes := Classes{{ID: "c1", Name: "أ"}, {ID: "c2", Name: "ب"}}
	cls, ok := classes.Find("c2")
	assert.True(t, ok)
	assert.Equal(t, "ب", cls.Name)
	_, ok = classes.Find("c9")
	assert.False(t, ok)
}

func TestNewStudentDefaults(t *testing.T) {
	s := NewStudent("std_1", "ليلى")
	assert.Equal(t, DefaultParticipationScore, s.ParticipationScore)
	assert.NotNil(t, s.Attendance)
	assert.Empty(t, s.Attendance)
	assert.Empty(t, s.Notes)
}

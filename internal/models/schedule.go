package models

// DayOfWeek is a school day. Values are the day names shown in the planner UI.
type DayOfWeek string

const (
	DaySunday    DayOfWeek = "الأحد"
	DayMonday    DayOfWeek = "الاثنين"
	DayTuesday   DayOfWeek = "الثلاثاء"
	DayWednesday DayOfWeek = "الأربعاء"
	DayThursday  DayOfWeek = "الخميس"
)

// PeriodsPerDay is the number of teaching periods in a school day.
const PeriodsPerDay = 7

// SchoolDays lists the working week in display order.
var SchoolDays = []DayOfWeek{DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday}

// Valid reports whether d is one of the school days.
func (d DayOfWeek) Valid() bool {
	for _, day := range SchoolDays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleSlot is one period on one weekday. An empty ClassName means the period is free.
type ScheduleSlot struct {
	ID        string    `json:"id" validate:"required"`
	Day       DayOfWeek `json:"day" validate:"required,schoolday"`
	Period    int       `json:"period" validate:"min=1,max=7"`
	ClassName string    `json:"className"`
}

// Schedule is the ordered weekly grid snapshot.
type Schedule []ScheduleSlot

package models

import "time"

// ClassReport summarises one class for the reports dashboard.
type ClassReport struct {
	ClassID              string                   `json:"classId"`
	ClassName            string                   `json:"className"`
	StudentCount         int                      `json:"studentCount"`
	AverageParticipation float64                  `json:"averageParticipation"`
	Attendance           map[AttendanceStatus]int `json:"attendance"`
	WeeklyPeriods        int                      `json:"weeklyPeriods"`
}

// TaskSummary counts tasks by state and priority.
type TaskSummary struct {
	Total      int                  `json:"total"`
	Completed  int                  `json:"completed"`
	Pending    int                  `json:"pending"`
	ByPriority map[TaskPriority]int `json:"byPriority"`
}

// Report is a read-only projection over classes, schedule and tasks.
// UnknownClassNames lists schedule entries whose class no longer exists.
type Report struct {
	Classes           []ClassReport `json:"classes"`
	TotalStudents     int           `json:"totalStudents"`
	AssignedPeriods   int           `json:"assignedPeriods"`
	FreePeriods       int           `json:"freePeriods"`
	UnknownClassNames []string      `json:"unknownClassNames"`
	Tasks             TaskSummary   `json:"tasks"`
	GeneratedAt       time.Time     `json:"generatedAt"`
}

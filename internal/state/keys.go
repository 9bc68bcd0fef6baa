package state

// Store keys, one per container.
const (
	KeySchedule = "schedule"
	KeyClasses  = "classes"
	KeyTasks    = "tasks"
	KeySettings = "appSettings"
	KeyTheme    = "theme"
)

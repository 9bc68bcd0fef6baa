package models

// ViewMode selects which presentation component is rendered.
type ViewMode string

const (
	ViewSchedule ViewMode = "schedule"
	ViewTracker  ViewMode = "tracker"
	ViewClasses  ViewMode = "classes"
	ViewTasks    ViewMode = "tasks"
	ViewReports  ViewMode = "reports"
	ViewSettings ViewMode = "settings"
)

// ViewModes lists the navigable views in sidebar order.
var ViewModes = []ViewMode{ViewSchedule, ViewTracker, ViewClasses, ViewTasks, ViewReports, ViewSettings}

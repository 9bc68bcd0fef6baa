package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Views         *ViewHandler
	Schedule      *ScheduleHandler
	Classes       *ClassHandler
	Students      *StudentHandler
	Tasks         *TaskHandler
	Settings      *SettingsHandler
	Notifications *NotificationHandler
	Reports       *ReportHandler
	Metrics       *MetricsHandler
}

// RegisterRoutes mounts the planner API under prefix and the probes at the root.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, exposeMetrics bool) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if exposeMetrics {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)

	api.GET("/views", h.Views.Modes)
	api.GET("/views/:mode", h.Views.Render)

	api.GET("/schedule", h.Schedule.Get)
	api.PUT("/schedule/slot", h.Schedule.UpdateSlot)

	classes := api.Group("/classes")
	classes.GET("", h.Classes.List)
	classes.POST("", h.Classes.Create)
	classes.GET("/:id", h.Classes.Get)
	classes.DELETE("/:id", h.Classes.Delete)
	classes.POST("/:id/students", h.Students.Add)
	classes.POST("/:id/students/import", h.Students.Import)
	classes.PUT("/:id/students/:studentId", h.Students.Update)
	classes.DELETE("/:id/students/:studentId", h.Students.Delete)

	tasks := api.Group("/tasks")
	tasks.GET("", h.Tasks.List)
	tasks.POST("", h.Tasks.Create)
	tasks.PATCH("/:id/toggle", h.Tasks.Toggle)
	tasks.DELETE("/:id", h.Tasks.Delete)

	api.GET("/settings", h.Settings.Get)
	api.PUT("/settings", h.Settings.Save)
	api.GET("/theme", h.Settings.Theme)
	api.PUT("/theme", h.Settings.SetTheme)
	api.POST("/theme/toggle", h.Settings.ToggleTheme)

	api.GET("/notifications", h.Notifications.List)
	api.DELETE("/notifications/:id", h.Notifications.Dismiss)

	api.GET("/reports", h.Reports.Report)
	api.GET("/exports/:kind", h.Reports.Export)
}

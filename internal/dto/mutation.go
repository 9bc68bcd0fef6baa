package dto

import "github.com/noah-isme/teacher-planner-api/internal/models"

// UpdateSlotRequest assigns a class to one period. An empty ClassName frees the period.
type UpdateSlotRequest struct {
	Day       models.DayOfWeek `json:"day" validate:"required,schoolday"`
	Period    int              `json:"period" validate:"min=1,max=7"`
	ClassName string           `json:"className"`
}

// CreateClassRequest creates an empty class.
type CreateClassRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// AddStudentRequest appends a student to a class.
type AddStudentRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// ImportStudentsRequest appends several students in order.
type ImportStudentsRequest struct {
	Names []string `json:"names" validate:"required,min=1,max=500,dive,required,max=120"`
}

// UpdateStudentRequest replaces a student record wholesale. The id comes from the path.
type UpdateStudentRequest struct {
	Name               string                             `json:"name" validate:"required,max=120"`
	Notes              string                             `json:"notes"`
	Attendance         map[string]models.AttendanceStatus `json:"attendance"`
	ParticipationScore int                                `json:"participationScore"`
}

// CreateTaskRequest adds a pending task.
type CreateTaskRequest struct {
	Text     string              `json:"text" validate:"required"`
	Priority models.TaskPriority `json:"priority" validate:"required,oneof=high medium low"`
	DueDate  *string             `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

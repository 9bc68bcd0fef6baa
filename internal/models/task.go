package models

// TaskPriority ranks a daily task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Task is a to-do item on the teacher's list.
type Task struct {
	ID        string       `json:"id" validate:"required"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Priority  TaskPriority `json:"priority" validate:"oneof=high medium low"`
	DueDate   *string      `json:"dueDate,omitempty"`
}

// Tasks is the ordered task list snapshot.
type Tasks []Task

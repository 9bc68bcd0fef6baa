package models

// AttendanceStatus is recorded per date key; the set of values is open.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// DefaultParticipationScore is assigned to newly created students.
const DefaultParticipationScore = 10

// Student belongs to exactly one ClassGroup. IDs are only unique within the class.
type Student struct {
	ID                 string                      `json:"id" validate:"required"`
	Name               string                      `json:"name"`
	Notes              string                      `json:"notes"`
	Attendance         map[string]AttendanceStatus `json:"attendance"`
	ParticipationScore int                         `json:"participationScore"`
}

// NewStudent builds a student with the default attendance and score.
func NewStudent(id, name string) Student {
	return Student{
		ID:                 id,
		Name:               name,
		Attendance:         map[string]AttendanceStatus{},
		ParticipationScore: DefaultParticipationScore,
	}
}

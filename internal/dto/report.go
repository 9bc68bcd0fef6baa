package dto

// ExportQuery captures GET /exports/:kind parameters.
type ExportQuery struct {
	Kind    string `validate:"required,oneof=schedule roster report"`
	Format  string `form:"format" validate:"omitempty,oneof=csv pdf"`
	ClassID string `form:"classId" validate:"required_if=Kind roster"`
}

package service

// User-facing notification texts.
const (
	msgScheduleUpdated  = "تم تحديث الجدول بنجاح"
	msgClassAdded       = "تمت إضافة فصل %s"
	msgClassDeleted     = "تم حذف فصل %s"
	msgStudentAdded     = "تمت إضافة الطالب %s"
	msgStudentsImported = "تم استيراد %d طالب بنجاح"
	msgStudentDeleted   = "تم حذف الطالب"
	msgTaskAdded        = "تمت إضافة المهمة"
	msgTaskRemoved      = "تمت إزالة المهمة"
	msgSaveFailed       = "تعذر حفظ البيانات"
)

// Mutation names used for metrics and logs.
const (
	opUpdateSlot     = "update_schedule_slot"
	opAddClass       = "add_class"
	opDeleteClass    = "delete_class"
	opAddStudent     = "add_student"
	opImportStudents = "import_students"
	opDeleteStudent  = "delete_student"
	opUpdateStudent  = "update_student"
	opAddTask        = "add_task"
	opToggleTask     = "toggle_task"
	opDeleteTask     = "delete_task"
	opSaveSettings   = "save_settings"
	opSetTheme       = "set_theme"
)

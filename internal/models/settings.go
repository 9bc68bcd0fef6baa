package models

// ThemeColor selects the accent palette.
type ThemeColor string

const (
	ThemeEmerald ThemeColor = "emerald"
	ThemeBlue    ThemeColor = "blue"
	ThemePurple  ThemeColor = "purple"
	ThemeOrange  ThemeColor = "orange"
	ThemeRose    ThemeColor = "rose"
)

// AppSettings is the singleton settings record. It is always overwritten wholesale.
type AppSettings struct {
	ThemeColor  ThemeColor `json:"themeColor" validate:"oneof=emerald blue purple orange rose"`
	TeacherName string     `json:"teacherName"`
	SchoolName  string     `json:"schoolName"`
}

// ThemeMode is the dark/light preference, persisted as a bare string.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeModeDark {
		return ThemeModeLight
	}
	return ThemeModeDark
}

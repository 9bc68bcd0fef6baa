package state

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/teacher-planner-api/internal/models"
)

// Codec converts a snapshot to and from its stored string form. Check is the
// schema boundary applied to decoded values; a failing check means the stored
// value is treated as corrupt.
type Codec[T any] struct {
	Encode func(T) (string, error)
	Decode func(string) (T, error)
	Check  func(T) error
}

// JSONCodec stores snapshots as JSON documents.
func JSONCodec[T any](check func(T) error) Codec[T] {
	return Codec[T]{
		Encode: func(v T) (string, error) {
			data, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		Decode: func(raw string) (T, error) {
			var v T
			err := json.Unmarshal([]byte(raw), &v)
			return v, err
		},
		Check: check,
	}
}

// ThemeCodec stores the bare "dark"/"light" string. Anything but "dark" reads as light.
func ThemeCodec() Codec[models.ThemeMode] {
	return Codec[models.ThemeMode]{
		Encode: func(m models.ThemeMode) (string, error) {
			if m == models.ThemeModeDark {
				return string(models.ThemeModeDark), nil
			}
			return string(models.ThemeModeLight), nil
		},
		Decode: func(raw string) (models.ThemeMode, error) {
			if raw == string(models.ThemeModeDark) {
				return models.ThemeModeDark, nil
			}
			return models.ThemeModeLight, nil
		},
	}
}

// Codecs bundles the codec of every container.
type Codecs struct {
	Schedule Codec[models.Schedule]
	Classes  Codec[models.Classes]
	Tasks    Codec[models.Tasks]
	Settings Codec[models.AppSettings]
	Theme    Codec[models.ThemeMode]
}

// NewCodecs wires the load-time schema checks to validate.
func NewCodecs(validate *validator.Validate) Codecs {
	if validate == nil {
		validate = models.NewValidator()
	}
	return Codecs{
		Schedule: JSONCodec(func(s models.Schedule) error {
			if err := validate.Var(s, "required,unique=ID,dive"); err != nil {
				return err
			}
			return checkSlotPairs(s)
		}),
		Classes: JSONCodec(func(c models.Classes) error {
			return validate.Var(c, "required,unique=ID,dive")
		}),
		Tasks: JSONCodec(func(t models.Tasks) error {
			return validate.Var(t, "required,unique=ID,dive")
		}),
		Settings: JSONCodec(func(s models.AppSettings) error {
			return validate.Struct(s)
		}),
		Theme: ThemeCodec(),
	}
}

func checkSlotPairs(schedule models.Schedule) error {
	type pair struct {
		day    models.DayOfWeek
		period int
	}
	seen := make(map[pair]struct{}, len(schedule))
	for _, slot := range schedule {
		p := pair{slot.Day, slot.Period}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("duplicate slot for %s period %d", slot.Day, slot.Period)
		}
		seen[p] = struct{}{}
	}
	return nil
}

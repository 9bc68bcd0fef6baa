package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
)

func TestUpdateSlotChangesOnlyThatSlot(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	before := h.containers.Schedule.Get()

	after, err := h.schedule.UpdateSlot(ctx, dto.UpdateSlotRequest{Day: models.DayMonday, Period: 3, ClassName: " الرياضيات "})
	require.NoError(t, err)
	require.Len(t, after, len(before))

	for i := range after {
		if after[i].Day == models.DayMonday && after[i].Period == 3 {
			assert.Equal(t, "الرياضيات", after[i].ClassName)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
	assert.Empty(t, before[9].ClassName, "previous snapshot must not change")
	assert.Equal(t, "تم تحديث الجدول بنجاح", h.lastNotification().Message)
}

func TestUpdateSlotRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)
	before := h.containers.Schedule.Get()

	_, err := h.schedule.UpdateSlot(context.Background(), dto.UpdateSlotRequest{Day: "الجمعة", Period: 2, ClassName: "x"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	_, err = h.schedule.UpdateSlot(context.Background(), dto.UpdateSlotRequest{Day: models.DaySunday, Period: 8})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	assert.Equal(t, before, h.containers.Schedule.Get())
	assert.Empty(t, h.notes.List())
}

func TestDeleteFirstOfTwoClasses(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.containers.Classes.Set(models.Classes{
		{ID: "a", Name: "أ", Students: []models.Student{models.NewStudent("1", "x"), models.NewStudent("2", "y")}},
		{ID: "b", Name: "ب", Students: []models.Student{models.NewStudent("1", "x"), models.NewStudent("2", "y"), models.NewStudent("3", "z")}},
	})

	next := h.classes.Delete(ctx, "a")

	require.Len(t, next, 1)
	assert.Equal(t, "b", next[0].ID)
	assert.Len(t, next[0].Students, 3)
	note := h.lastNotification()
	assert.Equal(t, "تم حذف فصل أ", note.Message)
	assert.Equal(t, models.NotificationInfo, note.Type)
}

func TestDeleteClassKeepsScheduleNames(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.schedule.UpdateSlot(ctx, dto.UpdateSlotRequest{Day: models.DaySunday, Period: 1, ClassName: "الصف الأول - أ"})
	require.NoError(t, err)

	h.classes.Delete(ctx, "c1")

	assert.Equal(t, "الصف الأول - أ", h.containers.Schedule.Get()[0].ClassName)
}

func TestDeleteMissingClassStillNotifies(t *testing.T) {
	h := newHarness(t)
	before := h.containers.Classes.Get()

	next := h.classes.Delete(context.Background(), "cls_missing")

	assert.Equal(t, before, next)
	assert.Equal(t, "تم حذف فصل ", h.lastNotification().Message)
}

func TestCreateClass(t *testing.T) {
	h := newHarness(t)

	cls, err := h.classes.Create(context.Background(), dto.CreateClassRequest{Name: "الصف الثالث - ج"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cls.ID, PrefixClass))
	assert.NotNil(t, cls.Students)
	classes := h.containers.Classes.Get()
	require.Len(t, classes, 3)
	assert.Equal(t, cls.ID, classes[2].ID)
	assert.Equal(t, "تمت إضافة فصل الصف الثالث - ج", h.lastNotification().Message)

	_, err = h.classes.Create(context.Background(), dto.CreateClassRequest{Name: "   "})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Len(t, h.containers.Classes.Get(), 3)
}

func TestStudentCountTracksAddsAndDeletes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	count := func() int {
		cls, _ := h.containers.Classes.Get().Find("c2")
		return len(cls.Students)
	}
	start := count()

	a, err := h.students.Add(ctx, "c2", dto.AddStudentRequest{Name: "ليلى"})
	require.NoError(t, err)
	_, err = h.students.Add(ctx, "c2", dto.AddStudentRequest{Name: "عمر"})
	require.NoError(t, err)
	h.students.Delete(ctx, "c2", a.ID)
	h.students.Delete(ctx, "c2", "std_missing")

	assert.Equal(t, start+1, count())
	assert.Equal(t, models.DefaultParticipationScore, a.ParticipationScore)
	assert.Equal(t, "تم حذف الطالب", h.lastNotification().Message)
}

func TestAddStudentToMissingClassIsNoop(t *testing.T) {
	h := newHarness(t)
	before := h.containers.Classes.Get()

	_, err := h.students.Add(context.Background(), "cls_missing", dto.AddStudentRequest{Name: "ليلى"})
	require.NoError(t, err)

	assert.Equal(t, before, h.containers.Classes.Get())
	assert.Equal(t, "تمت إضافة الطالب ليلى", h.lastNotification().Message)
}

func TestImportStudentsIsOneTransition(t *testing.T) {
	h := newHarness(t)
	transitions := 0
	cancel := h.containers.Classes.Subscribe(func(models.Classes) { transitions++ })
	defer cancel()

	imported, err := h.students.Import(context.Background(), "c1", dto.ImportStudentsRequest{Names: []string{"ليلى", " ", "عمر", "هند"}})
	require.NoError(t, err)

	assert.Equal(t, 1, transitions)
	require.Len(t, imported, 3)
	cls, _ := h.containers.Classes.Get().Find("c1")
	require.Len(t, cls.Students, 6)
	tail := cls.Students[3:]
	assert.Equal(t, []string{"ليلى", "عمر", "هند"}, []string{tail[0].Name, tail[1].Name, tail[2].Name})
	for i, s := range tail {
		assert.True(t, strings.HasPrefix(s.ID, PrefixImportedStudent))
		assert.True(t, strings.HasSuffix(s.ID, "_"+string(rune('0'+i))))
	}
	assert.Equal(t, "تم استيراد 3 طالب بنجاح", h.lastNotification().Message)

	_, err = h.students.Import(context.Background(), "c1", dto.ImportStudentsRequest{Names: []string{" "}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestImportStudentsRejectsOversizedBatch(t *testing.T) {
	h := newHarness(t)
	before, _ := h.containers.Classes.Get().Find("c1")

	names := make([]string, 501)
	for i := range names {
		names[i] = "طالب"
	}
	_, err := h.students.Import(context.Background(), "c1", dto.ImportStudentsRequest{Names: names})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	after, _ := h.containers.Classes.Get().Find("c1")
	assert.Len(t, after.Students, len(before.Students))

	_, err = h.students.Import(context.Background(), "c1", dto.ImportStudentsRequest{Names: names[:500]})
	require.NoError(t, err)
}

func TestUpdateStudentIsSilentWholeReplace(t *testing.T) {
	h := newHarness(t)

	updated, err := h.students.Update(context.Background(), "c1", "s2", dto.UpdateStudentRequest{
		Name:               "خالد علي",
		Attendance:         map[string]models.AttendanceStatus{"2024-09-01": models.AttendanceLate},
		ParticipationScore: 12,
	})
	require.NoError(t, err)

	cls, _ := h.containers.Classes.Get().Find("c1")
	assert.Equal(t, *updated, cls.Students[1])
	assert.Empty(t, cls.Students[1].Notes)
	assert.Empty(t, h.notes.List())
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	before := h.containers.Tasks.Get()

	once := h.tasks.Toggle(ctx, "1")
	assert.True(t, once[0].Completed)
	twice := h.tasks.Toggle(ctx, "1")

	assert.Equal(t, before, twice)
	assert.Empty(t, h.notes.List())
}

func TestDeleteMissingTaskProducesEqualSnapshotAndPersists(t *testing.T) {
	h := newHarness(t)
	before := h.containers.Tasks.Get()
	saves := h.store.Saves()

	next := h.tasks.Delete(context.Background(), "tsk_missing")

	assert.Equal(t, before, next)
	assert.Equal(t, saves+1, h.store.Saves())
	note := h.lastNotification()
	assert.Equal(t, "تمت إزالة المهمة", note.Message)
	assert.Equal(t, models.NotificationInfo, note.Type)
}

func TestCreateTask(t *testing.T) {
	h := newHarness(t)
	due := "2024-10-01"

	task, err := h.tasks.Create(context.Background(), dto.CreateTaskRequest{Text: "تصحيح", Priority: models.PriorityMedium, DueDate: &due})
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.True(t, strings.HasPrefix(task.ID, PrefixTask))
	assert.Len(t, h.containers.Tasks.Get(), 2)
	assert.Equal(t, "تمت إضافة المهمة", h.lastNotification().Message)

	_, err = h.tasks.Create(context.Background(), dto.CreateTaskRequest{Text: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Len(t, h.containers.Tasks.Get(), 2)
}

func TestSettingsAndThemePersist(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	saved, err := h.settings.Save(ctx, dto.UpdateSettingsRequest{ThemeColor: models.ThemeRose, TeacherName: " أ. منى ", SchoolName: "مدرسة النور"})
	require.NoError(t, err)
	assert.Equal(t, "أ. منى", saved.TeacherName)

	assert.Equal(t, models.ThemeModeDark, h.settings.ToggleTheme(ctx))
	raw, found, err := h.store.Load(ctx, state.KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", raw)

	raw, _, err = h.store.Load(ctx, state.KeySettings)
	require.NoError(t, err)
	var stored models.AppSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, saved, stored)

	_, err = h.settings.SetTheme(ctx, dto.SetThemeRequest{Mode: "sepia"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	mode, err := h.settings.SetTheme(ctx, dto.SetThemeRequest{Mode: models.ThemeModeLight})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeModeLight, mode)
}

func TestMutationMetricsCounted(t *testing.T) {
	h := newHarness(t)
	h.tasks.Toggle(context.Background(), "1")
	h.tasks.Toggle(context.Background(), "1")

	assert.Equal(t, float64(2), testutil.ToFloat64(h.metrics.mutations.WithLabelValues(opToggleTask)))
}

type brokenStore struct {
	*kvstore.MemoryStore
	failKey string
}

func (s *brokenStore) Save(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Save(ctx, key, value)
}

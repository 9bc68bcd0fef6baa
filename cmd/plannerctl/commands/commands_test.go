package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/app"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	"github.com/noah-isme/teacher-planner-api/pkg/config"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
)

type fixture struct {
	store *kvstore.MemoryStore
	app   *app.App
	out   *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		APIPrefix:     "/api/v1",
		Notifications: config.NotificationConfig{TTL: time.Minute},
		Exports:       config.ExportsConfig{Enabled: true},
	}
	store := kvstore.NewMemoryStore(nil)
	a := app.NewWithStore(context.Background(), cfg, zap.NewNop(), store, nil)
	t.Cleanup(func() { _ = a.Close() })
	return &fixture{store: store, app: a, out: &bytes.Buffer{}}
}

// run parses args the way main does and executes the selected command.
func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("plannerctl"), kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	kctx.BindTo(context.Background(), (*context.Context)(nil))
	return kctx.Run(&Global{App: f.app, Out: f.out})
}

func TestShowView(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "show", "tasks"))
	assert.Contains(t, f.out.String(), `"mode": "tasks"`)

	err := f.run(t, "show", "calendar")
	assert.Error(t, err)
}

func TestTaskCommands(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "task", "add", "مراجعة الواجبات", "-p", "high", "--due", "2026-10-20"))
	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.NotEmpty(t, lines)
	id := lines[0]
	assert.True(t, strings.HasPrefix(id, "tsk_"))
	assert.Empty(t, f.app.Notifications.List())

	f.out.Reset()
	require.NoError(t, f.run(t, "task", "toggle", id))
	assert.Equal(t, id+" completed=true\n", f.out.String())

	require.NoError(t, f.run(t, "task", "delete", id))
	tasks := f.app.State.Tasks.Get()
	require.Len(t, tasks, 1)
	assert.Equal(t, "1", tasks[0].ID)

	raw, ok, err := f.store.Load(context.Background(), state.KeyTasks)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, id)

	assert.Error(t, f.run(t, "task", "add", "x", "-p", "urgent"))
}

func TestClassAndImport(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "class", "add", "الصف الرابع"))
	classID := strings.SplitN(f.out.String(), "\n", 2)[0]
	require.True(t, strings.HasPrefix(classID, "cls_"))

	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("هند\n\n  علي  \n"), 0o600))

	f.out.Reset()
	require.NoError(t, f.run(t, "student", "import", "--class", classID, path))
	cls, ok := f.app.State.Classes.Get().Find(classID)
	require.True(t, ok)
	require.Len(t, cls.Students, 2)
	assert.Equal(t, "علي", cls.Students[1].Name)

	assert.Error(t, f.run(t, "student", "import", "--class", "missing", path))

	require.NoError(t, f.run(t, "class", "delete", classID))
	_, ok = f.app.State.Classes.Get().Find(classID)
	assert.False(t, ok)
}

func TestExportWritesFile(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()

	require.NoError(t, f.run(t, "export", "roster", "--class", "c1", "-o", dir))
	written := strings.TrimSpace(f.out.String())
	assert.Equal(t, dir, filepath.Dir(written))
	assert.True(t, strings.HasPrefix(filepath.Base(written), "roster_c1_"))

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "أحمد محمد")

	named := filepath.Join(dir, "nested", "week.csv")
	f.out.Reset()
	require.NoError(t, f.run(t, "export", "schedule", "--out", named))
	assert.Equal(t, named, strings.TrimSpace(f.out.String()))
	assert.FileExists(t, named)

	assert.Error(t, f.run(t, "export", "roster"))
}

func TestApplyOverrides(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverFile, Dir: "./data"}}
	cli := CLI{Store: config.StoreDriverMemory, Verbose: true}
	cli.Apply(cfg)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

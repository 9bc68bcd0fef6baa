package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/pkg/storage"
)

type ExportCmd struct {
	Kind   string `arg:"" enum:"schedule,roster,report" help:"What to export"`
	Format string `enum:"csv,pdf" default:"csv" help:"Output format"`
	Class  string `help:"Class ID (roster only)"`
	Out    string `short:"o" type:"path" help:"Output file or directory (defaults to EXPORT_DIR)"`
}

func (e *ExportCmd) Run(ctx context.Context, g *Global) error {
	file, err := g.App.Exports.Generate(ctx, dto.ExportQuery{Kind: e.Kind, Format: e.Format, ClassID: e.Class})
	if err != nil {
		return err
	}

	dir, name := g.App.Config.Exports.Dir, file.Filename
	if e.Out != "" {
		if info, statErr := os.Stat(e.Out); statErr == nil && info.IsDir() {
			dir = e.Out
		} else {
			dir, name = filepath.Split(e.Out)
			if dir == "" {
				dir = "."
			}
		}
	}

	sink, err := storage.NewLocalStorage(dir)
	if err != nil {
		return err
	}
	path, err := sink.Save(name, file.Data)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, path)
	return nil
}

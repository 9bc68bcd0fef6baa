package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/pkg/roster"
)

type ClassCmd struct {
	Add    ClassAddCmd    `cmd:"" help:"Create an empty class"`
	Delete ClassDeleteCmd `cmd:"" help:"Delete a class and its students"`
}

type ClassAddCmd struct {
	Name string `arg:"" help:"Class name"`
}

func (c *ClassAddCmd) Run(ctx context.Context, g *Global) error {
	cls, err := g.App.Classes.Create(ctx, dto.CreateClassRequest{Name: c.Name})
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, cls.ID)
	g.drainNotifications()
	return nil
}

type ClassDeleteCmd struct {
	ID string `arg:"" help:"Class ID"`
}

func (c *ClassDeleteCmd) Run(ctx context.Context, g *Global) error {
	g.App.Classes.Delete(ctx, c.ID)
	g.drainNotifications()
	return nil
}

type StudentCmd struct {
	Import StudentImportCmd `cmd:"" help:"Import names from a .txt, .csv or .xlsx file"`
}

type StudentImportCmd struct {
	Class string `required:"" help:"Target class ID"`
	File  string `arg:"" type:"existingfile" help:"Roster file"`
}

func (s *StudentImportCmd) Run(ctx context.Context, g *Global) error {
	if _, err := g.App.Classes.Get(ctx, s.Class); err != nil {
		return err
	}

	f, err := os.Open(s.File)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	names, err := roster.Parse(s.File, f)
	if err != nil {
		return err
	}
	students, err := g.App.Students.Import(ctx, s.Class, dto.ImportStudentsRequest{Names: names})
	if err != nil {
		return err
	}
	for _, st := range students {
		fmt.Fprintf(g.Out, "%s\t%s\n", st.ID, st.Name)
	}
	g.drainNotifications()
	return nil
}

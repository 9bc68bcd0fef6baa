package commands

import (
	"context"
	"fmt"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/models"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a pending task"`
	Toggle TaskToggleCmd `cmd:"" help:"Flip a task's completion"`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task"`
}

type TaskAddCmd struct {
	Text     string `arg:"" help:"Task text"`
	Priority string `short:"p" enum:"high,medium,low" default:"medium" help:"Priority"`
	Due      string `help:"Due date (YYYY-MM-DD)"`
}

func (t *TaskAddCmd) Run(ctx context.Context, g *Global) error {
	req := dto.CreateTaskRequest{Text: t.Text, Priority: models.TaskPriority(t.Priority)}
	if t.Due != "" {
		req.DueDate = &t.Due
	}
	task, err := g.App.Tasks.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, task.ID)
	g.drainNotifications()
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task ID"`
}

func (t *TaskToggleCmd) Run(ctx context.Context, g *Global) error {
	for _, task := range g.App.Tasks.Toggle(ctx, t.ID) {
		if task.ID == t.ID {
			fmt.Fprintf(g.Out, "%s completed=%t\n", task.ID, task.Completed)
			return nil
		}
	}
	return fmt.Errorf("task %q not found", t.ID)
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID"`
}

func (t *TaskDeleteCmd) Run(ctx context.Context, g *Global) error {
	g.App.Tasks.Delete(ctx, t.ID)
	g.drainNotifications()
	return nil
}

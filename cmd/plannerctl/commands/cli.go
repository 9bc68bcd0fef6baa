// Package commands implements the plannerctl subcommands on top of the same
// state containers and services the HTTP server uses.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/noah-isme/teacher-planner-api/internal/app"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/pkg/config"
)

// Global carries the process-wide values every subcommand runs against.
type Global struct {
	App *app.App
	Out io.Writer
}

// CLI is the root grammar.
type CLI struct {
	Store   string `help:"Override STORE_DRIVER (file, sqlite, redis, postgres, memory)"`
	Dir     string `help:"Override STORE_DIR for the file driver" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Show    ShowCmd    `cmd:"" help:"Print a view as JSON"`
	Task    TaskCmd    `cmd:"" help:"Manage the task list"`
	Class   ClassCmd   `cmd:"" help:"Manage classes"`
	Student StudentCmd `cmd:"" help:"Manage class rosters"`
	Export  ExportCmd  `cmd:"" help:"Write a CSV or PDF export"`
}

// Apply copies flag overrides onto the loaded configuration.
func (c *CLI) Apply(cfg *config.Config) {
	if c.Store != "" {
		cfg.Store.Driver = c.Store
	}
	if c.Dir != "" {
		cfg.Store.Dir = c.Dir
	}
	if c.Verbose {
		cfg.Log.Level = "debug"
	} else {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = "console"
}

func (g *Global) printJSON(v interface{}) error {
	enc := json.NewEncoder(g.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// drainNotifications prints and dismisses whatever the last command queued.
func (g *Global) drainNotifications() {
	for _, n := range g.App.Notifications.List() {
		fmt.Fprintf(g.Out, "[%s] %s\n", n.Type, n.Message)
		g.App.Notifications.Dismiss(n.ID)
	}
}

// ShowCmd renders one navigation view.
type ShowCmd struct {
	View string `arg:"" default:"schedule" enum:"schedule,tracker,classes,tasks,reports,settings" help:"View mode"`
}

func (s *ShowCmd) Run(ctx context.Context, g *Global) error {
	payload, err := g.App.Views.Render(ctx, models.ViewMode(s.View))
	if err != nil {
		return err
	}
	return g.printJSON(payload)
}

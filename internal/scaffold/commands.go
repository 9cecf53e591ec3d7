package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/output"
	"github.com/locko/rtools/internal/templates"
)

// ErrCancelled is returned when the name prompt was dismissed or left
// empty. Nothing is shown to the user and nothing is written.
var ErrCancelled = errors.New("cancelled")

// Outcome describes a finished run.
type Outcome struct {
	Request Request
	Result  Result
}

// Commands are the user-invoked entry points.
//
// Every error they return other than ErrCancelled has already been reported
// through Port.NotifyError exactly once.
type Commands struct {
	Pipeline *Pipeline
}

// NewCommands creates the entry points around pipeline.
func NewCommands(pipeline *Pipeline) *Commands {
	return &Commands{Pipeline: pipeline}
}

// CreateComponent scaffolds a component under selectedDir/.Common.
func (c *Commands) CreateComponent(ctx context.Context, selectedDir string) (*Outcome, error) {
	return c.create(ctx, templates.Component, selectedDir)
}

// CreateContainer scaffolds a container under selectedDir.
func (c *Commands) CreateContainer(ctx context.Context, selectedDir string) (*Outcome, error) {
	return c.create(ctx, templates.Container, selectedDir)
}

// create prompts for a name, checks the target is free and runs the flow.
func (c *Commands) create(ctx context.Context, kind templates.Kind, selectedDir string) (*Outcome, error) {
	port := c.Pipeline.Port

	name, ok, err := port.PromptForName(ctx, kind.DefaultName())
	if err != nil {
		port.NotifyError(err.Error())
		return nil, fmt.Errorf("prompting for name: %w", err)
	}
	if !ok || name == "" {
		output.Debug("prompt dismissed", "kind", kind)
		return nil, ErrCancelled
	}

	req := NewRequest(kind, selectedDir, name)

	if _, err := os.Lstat(req.TargetDir); err == nil {
		msg := fmt.Sprintf("%s already exists", cases.Title(language.English).String(kind.String()))
		port.NotifyError(msg)
		return nil, oerrors.NewExistsError(msg, req.TargetDir, "Choose a different name.")
	}

	res := c.Pipeline.Run(ctx, req)
	out := &Outcome{Request: req, Result: res}
	if !res.OK() {
		port.NotifyError(res.Failed.Error())
		output.Debug("scaffold failed", "detail", res.Failed.Describe())
		return out, res.Err()
	}

	return out, nil
}

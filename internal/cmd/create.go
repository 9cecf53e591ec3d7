package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/interact"
	"github.com/locko/rtools/internal/output"
	"github.com/locko/rtools/internal/scaffold"
	"github.com/locko/rtools/internal/templates"
)

// NewComponentCmd creates the component command.
func NewComponentCmd() *cobra.Command {
	return newCreateCmd(templates.Component, `Create a React component under <dir>/.Common.

Writes <Name>.jsx, index.js and styled.jsx into <dir>/.Common/<Name>,
appends an export to <dir>/.Common/index.js and adds the name to the
import block closed by "} from './.Common';" in <dir>/index.js.

Examples:
  # Prompt for a name, scaffold into ./components
  rtools component ./components

  # Non-interactive, then open the new file
  rtools component ./components --name Widget --open`)
}

// NewContainerCmd creates the container command.
func NewContainerCmd() *cobra.Command {
	return newCreateCmd(templates.Container, `Create a Redux-connected React container under <dir>.

Writes <Name>.jsx and index.js into <dir>/<Name> and appends an export
to <dir>/index.js.

Examples:
  # Prompt for a name, scaffold into ./containers
  rtools container ./containers

  # Non-interactive
  rtools container ./containers --name Dashboard`)
}

func newCreateCmd(kind templates.Kind, long string) *cobra.Command {
	var nameFlag string
	var openFlag bool

	c := &cobra.Command{
		Use:   kind.String() + " [dir]",
		Short: fmt.Sprintf("Create a new %s", kind),
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			port := interact.NewTerminal()
			port.Name = nameFlag
			port.Open = openFlag
			port.Editor = settings.Editor
			return runCreate(c.Context(), kind, args, port)
		},
	}

	c.Flags().StringVar(&nameFlag, "name", "", "Name to use instead of prompting")
	c.Flags().BoolVar(&openFlag, "open", false, "Open the created file in the configured editor")

	return c
}

func runCreate(ctx context.Context, kind templates.Kind, args []string, port scaffold.Port) error {
	if configErr != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(configErr), Err: configErr}
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	selected, err := filepath.Abs(dir)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("getting absolute path: %w", err),
		}
	}

	store, err := openStore(settings.Templates)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	pipeline := scaffold.NewPipeline(store, port)
	pipeline.Runner.Around = func(ctx context.Context, step scaffold.Step, run func() error) error {
		return output.RunWithSpinner(ctx, step.Name, run)
	}

	commands := scaffold.NewCommands(pipeline)
	var out *scaffold.Outcome
	if kind == templates.Container {
		out, err = commands.CreateContainer(ctx, selected)
	} else {
		out, err = commands.CreateComponent(ctx, selected)
	}
	if errors.Is(err, scaffold.ErrCancelled) {
		output.Debug("nothing to do")
		return nil
	}

	if out != nil {
		printOutcome(out)
	}

	if err != nil {
		// Already reported through the port.
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	return nil
}

func openStore(dir string) (*templates.Store, error) {
	if dir == "" {
		return templates.Embedded(), nil
	}
	expanded, err := expandAbs(dir)
	if err != nil {
		return nil, err
	}
	return templates.Open(expanded)
}

// printOutcome prints the files touched by a run. A failed run lists what
// was done before the failure, since nothing is rolled back.
func printOutcome(out *scaffold.Outcome) {
	req := out.Request
	res := out.Result

	if res.OK() {
		files := make(map[string]string)
		for _, step := range res.Completed {
			if step.File == "" || step.File == req.TargetDir {
				continue
			}
			if rel, ok := relativeTo(req.TargetDir, step.File); ok {
				files[rel] = step.Status
			}
		}

		output.Println(fmt.Sprintf("Created %s '%s' in %s\n",
			req.Kind, output.StyleNoun.Render(req.Name), req.TargetDir))
		output.Print(output.RenderFileTree(req.TargetDir, files))
	}

	for _, step := range res.Completed {
		if step.File == "" || step.Status != output.StatusPatched {
			continue
		}
		output.Println(output.FormatFileLine(step.File, step.Status))
	}

	if !res.OK() {
		if len(res.Completed) > 0 {
			output.Println("Left in place:")
			for _, step := range res.Completed {
				if step.File != "" && step.Status == output.StatusCreated {
					output.Println(output.FormatFileLine(step.File, step.Status))
				}
			}
		}
		if res.Failed.Name != "" {
			output.Println(output.FormatFileLine(res.Failed.Name, output.StatusFailed))
		}
	}
}

func relativeTo(base, path string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

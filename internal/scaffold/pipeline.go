package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locko/rtools/internal/barrel"
	"github.com/locko/rtools/internal/output"
	"github.com/locko/rtools/internal/templates"
)

// Pipeline builds and runs the scaffolding flows.
type Pipeline struct {
	Store  *templates.Store
	Port   Port
	Runner Runner
}

// NewPipeline creates a pipeline rendering from store and talking to port.
func NewPipeline(store *templates.Store, port Port) *Pipeline {
	return &Pipeline{Store: store, Port: port}
}

// Steps returns the ordered steps for req.
func (p *Pipeline) Steps(req Request) []Step {
	steps := []Step{
		{
			Name:   "create directory",
			File:   req.TargetDir,
			Status: output.StatusCreated,
			Run: func(context.Context) error {
				if err := os.Mkdir(req.TargetDir, 0o755); err != nil {
					return fmt.Errorf("creating directory: %w", err)
				}
				return nil
			},
		},
		p.renderStep(req, templates.Primary),
		p.renderStep(req, templates.Index),
	}

	switch req.Kind {
	case templates.Component:
		steps = append(steps,
			p.renderStep(req, templates.Styled),
			appendExportStep(req.SharedBarrel, req.Name),
			Step{
				Name:   "patch " + filepath.Base(req.ParentBarrel),
				File:   req.ParentBarrel,
				Status: output.StatusPatched,
				Run: func(context.Context) error {
					return barrel.PatchFile(req.ParentBarrel, func(text string) string {
						return barrel.InsertIntoBlock(text, req.Name, barrel.CommonMarker)
					})
				},
			},
		)
	case templates.Container:
		steps = append(steps, appendExportStep(req.ParentBarrel, req.Name))
	}

	primary := req.PrimaryFile()
	steps = append(steps, Step{
		Name:        "reveal " + filepath.Base(primary),
		Interactive: true,
		Run: func(ctx context.Context) error {
			return p.Port.RevealFile(ctx, primary)
		},
	})

	return steps
}

// Run executes the flow for req.
func (p *Pipeline) Run(ctx context.Context, req Request) Result {
	runner := p.Runner
	if runner.Logger == nil {
		runner.Logger = output.ScaffoldLogger(req.Name)
	}

	runner.Logger.Debug("scaffolding",
		"kind", req.Kind,
		"target", req.TargetDir,
		"templates", p.Store.Root())

	return runner.Run(ctx, p.Steps(req))
}

func (p *Pipeline) renderStep(req Request, role templates.Role) Step {
	dest := req.OutputPath(role)
	return Step{
		Name:   "render " + filepath.Base(dest),
		File:   dest,
		Status: output.StatusCreated,
		Run: func(context.Context) error {
			return p.Store.RenderFile(req.Kind, role, req.Name, dest)
		},
	}
}

func appendExportStep(path, name string) Step {
	return Step{
		Name:   "patch " + filepath.Base(filepath.Dir(path)) + "/" + filepath.Base(path),
		File:   path,
		Status: output.StatusPatched,
		Run: func(context.Context) error {
			return barrel.PatchFile(path, func(text string) string {
				return barrel.AppendExport(text, name)
			})
		},
	}
}

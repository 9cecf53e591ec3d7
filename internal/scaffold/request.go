package scaffold

import (
	"path/filepath"

	"github.com/locko/rtools/internal/templates"
)

// commonDir holds shared components next to the components barrel.
const commonDir = ".Common"

// barrelFile is the file name of every barrel.
const barrelFile = "index.js"

// Request describes one scaffolding run.
type Request struct {
	Kind templates.Kind
	Name string

	// TargetDir is the directory created for the new module.
	TargetDir string

	// ParentBarrel is patched for both kinds: block insert for components,
	// export append for containers.
	ParentBarrel string

	// SharedBarrel is the .Common barrel (components only).
	SharedBarrel string
}

// NewComponentRequest lays out a component under <selectedDir>/.Common.
func NewComponentRequest(selectedDir, name string) Request {
	common := filepath.Join(selectedDir, commonDir)
	return Request{
		Kind:         templates.Component,
		Name:         name,
		TargetDir:    filepath.Join(common, name),
		ParentBarrel: filepath.Join(selectedDir, barrelFile),
		SharedBarrel: filepath.Join(common, barrelFile),
	}
}

// NewContainerRequest lays out a container directly under selectedDir.
func NewContainerRequest(selectedDir, name string) Request {
	return Request{
		Kind:         templates.Container,
		Name:         name,
		TargetDir:    filepath.Join(selectedDir, name),
		ParentBarrel: filepath.Join(selectedDir, barrelFile),
	}
}

// NewRequest dispatches on kind.
func NewRequest(kind templates.Kind, selectedDir, name string) Request {
	if kind == templates.Container {
		return NewContainerRequest(selectedDir, name)
	}
	return NewComponentRequest(selectedDir, name)
}

// OutputPath returns the generated file for role.
func (r Request) OutputPath(role templates.Role) string {
	return filepath.Join(r.TargetDir, role.OutputName(r.Name))
}

// PrimaryFile is the file revealed once the run succeeds.
func (r Request) PrimaryFile() string {
	return r.OutputPath(templates.Primary)
}

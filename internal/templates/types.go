// Package templates provides the bundled React templates, the template store
// and the placeholder renderer.
package templates

import (
	"fmt"
	"strings"
)

// Kind selects a template set and the downstream patch steps.
type Kind string

const (
	// Component renders a component plus its styled file under .Common.
	Component Kind = "component"

	// Container renders a container directly under the selected directory.
	Container Kind = "container"
)

// Kinds returns all template kinds.
func Kinds() []Kind {
	return []Kind{Component, Container}
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case Component:
		return Component, nil
	case Container:
		return Container, nil
	default:
		return "", fmt.Errorf("unknown template kind %q; valid kinds: component, container", s)
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// DefaultName is the name suggested by the prompt for this kind.
func (k Kind) DefaultName() string {
	switch k {
	case Container:
		return "NewContainer"
	default:
		return "NewComponent"
	}
}

// HasStyled reports whether the kind renders a styled file.
func (k Kind) HasStyled() bool {
	return k == Component
}

// Role identifies a template within a kind.
type Role string

const (
	// Primary is the main <Name>.jsx file.
	Primary Role = "primary"

	// Index is the module's own index.js.
	Index Role = "index"

	// Styled is the shared styled.jsx template.
	Styled Role = "styled"
)

// OutputName returns the generated file name for a role.
func (r Role) OutputName(name string) string {
	switch r {
	case Primary:
		return name + ".jsx"
	case Index:
		return "index.js"
	case Styled:
		return "styled.jsx"
	default:
		return ""
	}
}

// Roles returns the templates rendered for k, in pipeline order.
func (k Kind) Roles() []Role {
	if k.HasStyled() {
		return []Role{Primary, Index, Styled}
	}
	return []Role{Primary, Index}
}

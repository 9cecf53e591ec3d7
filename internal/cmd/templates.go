package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/locko/rtools/internal/config"
	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/output"
	"github.com/locko/rtools/internal/templates"
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect and customise templates",
		Long: `Inspect and customise the templates used by component and container.

Templates are plain files in which ${name} is replaced by the chosen name
and ${name_lower} by its lower-cased form. Nothing else is interpreted.`,
	}

	cmd.AddCommand(NewTemplatesListCmd())
	cmd.AddCommand(NewTemplatesEjectCmd())

	return cmd
}

// NewTemplatesListCmd creates the templates list command.
func NewTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show which template file each generated file comes from",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplatesList()
		},
	}
}

func runTemplatesList() error {
	if configErr != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(configErr), Err: configErr}
	}

	store, err := openStore(settings.Templates)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	tbl := output.NewTable("KIND", "ROLE", "OUTPUT", "TEMPLATE")
	for _, kind := range templates.Kinds() {
		for _, role := range kind.Roles() {
			path, err := store.Path(kind, role)
			if err != nil {
				path = "missing"
			}
			tbl.Row(kind.String(), string(role), role.OutputName("<Name>"), path)
		}
	}

	output.Println("Templates: " + output.StyleNoun.Render(store.Root()))
	output.Println(tbl.String())
	return nil
}

// NewTemplatesEjectCmd creates the templates eject command.
func NewTemplatesEjectCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "eject <dir>",
		Short: "Copy the bundled templates to a directory",
		Long: `Copy the bundled templates to a directory for customisation.

Point the templates setting (or --templates, RTOOLS_TEMPLATES) at the
directory afterwards.

Examples:
  rtools templates eject ~/.rtools/templates
  rtools templates eject ./templates --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplatesEject(args[0], forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing template files")

	return c
}

func runTemplatesEject(dir string, force bool) error {
	expanded, err := expandAbs(dir)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	written, err := templates.Embedded().Eject(expanded, force)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	files := make(map[string]string, len(written))
	for _, f := range written {
		files[f] = output.StatusCreated
	}

	output.Println(fmt.Sprintf("Ejected %d templates to %s\n", len(written), expanded))
	output.Print(output.RenderFileTree(expanded, files))
	output.Println("\nUse them with: templates: " + expanded)
	return nil
}

func expandAbs(path string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding path: %w", err)
	}
	return filepath.Abs(expanded)
}

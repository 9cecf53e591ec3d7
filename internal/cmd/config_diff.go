package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/locko/rtools/internal/config"
	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/output"
)

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Compare the config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigDiff()
		},
	}
}

func runConfigDiff() error {
	if configErr != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(configErr), Err: configErr}
	}

	path, err := configFilePath()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	current, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &oerrors.ExitError{
				Code: oerrors.ExitNotFound,
				Err: oerrors.NewNotFoundError("no config file", path,
					"Run 'rtools config init' to create one."),
			}
		}
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("reading config file: %w", err)}
	}

	defaults, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}

	diff, err := output.DiffYAML("defaults", defaults, path, current, output.IsTTY())
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	if diff == "" {
		output.Println(output.FormatCheckmark("Config matches the defaults"))
		return nil
	}

	output.Println(diff)
	return nil
}

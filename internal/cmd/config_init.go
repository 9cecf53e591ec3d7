package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/locko/rtools/internal/config"
	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the rtools configuration.

Writes ~/.rtools/config.yaml (or the file named by --config / RTOOLS_CONFIG)
with every setting documented.

Examples:
  # Initialize configuration
  rtools config init

  # Overwrite existing configuration
  rtools config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	path, err := configFilePath()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	// Check if config exists
	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitExists,
			Err: oerrors.NewExistsError("configuration already exists", path,
				"Use --force to overwrite existing configuration."),
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, []byte(config.DefaultConfigYAML), 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+path)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(path)))
	output.Println("Inspect with: rtools config show")

	return nil
}

// configFilePath returns the resolved config path, resolving it directly
// when the command runs without the root command.
func configFilePath() (string, error) {
	path := configPath.ConfigPath
	if path == "" {
		resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
		if err != nil {
			return "", err
		}
		path = resolved.ConfigPath
	}
	return config.ExpandPath(path)
}

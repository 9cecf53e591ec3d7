// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/locko/rtools/internal/config"
	"github.com/locko/rtools/internal/output"
)

var (
	// Global flags
	configFlag     string
	templatesFlag  string
	editorFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	configPath config.ResolveConfigPathResult
	loadedCfg  *config.Config
	configErr  error
	settings   config.Settings
)

// NewRootCmd creates the root command for rtools.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtools",
		Short: "Scaffold React components and containers",
		Long: `rtools scaffolds React components and containers from templates and
wires them into the surrounding index.js barrel files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RTOOLS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&templatesFlag, "templates", "", "Template directory (env: RTOOLS_TEMPLATES)")
	rootCmd.PersistentFlags().StringVar(&editorFlag, "editor", "", "Editor command used by --open (env: RTOOLS_EDITOR)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewComponentCmd())
	rootCmd.AddCommand(NewContainerCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	var err error
	configPath, err = config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return err
	}

	// Config errors are kept for the commands that need configuration so
	// that `config init` can still repair a broken file.
	loadedCfg, configErr = loadConfig(configPath.ConfigPath)

	opts := config.ResolveOptions{
		Templates: templatesFlag,
		Editor:    editorFlag,
		Config:    loadedCfg,
	}
	if cmd.Flags().Changed("timestamps") {
		opts.Timestamps = output.BoolPtr(timestampsFlag)
	}
	settings = config.Resolve(opts)

	// nil Timestamps means SetupLogging defaults to true
	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: settings.Timestamps,
	})

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configPath.ConfigPath,
			"config_source", configPath.Source,
		)
		if configErr != nil {
			output.Debug("config load error", "error", configErr)
		}
		config.LogResolvedValues(settings.Values)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load(path)
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/locko/rtools/internal/config"
	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show every setting with its value and where it came from.

Precedence: flag > env > config file > default.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			format, err := output.ParseOutputFormat(outputFlag)
			if err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
			}
			return runConfigShow(format)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, yaml, json")

	return cmd
}

// effectiveConfig is the resolved configuration as printed by config show.
type effectiveConfig struct {
	ConfigFile string         `yaml:"configFile" json:"configFile"`
	Settings   []settingEntry `yaml:"settings" json:"settings"`
}

type settingEntry struct {
	Key      string                      `yaml:"key" json:"key"`
	Value    any                         `yaml:"value" json:"value"`
	Source   config.ConfigSource         `yaml:"source" json:"source"`
	Shadowed map[config.ConfigSource]any `yaml:"shadowed,omitempty" json:"shadowed,omitempty"`
}

func runConfigShow(format output.OutputFormat) error {
	if configErr != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(configErr), Err: configErr}
	}

	eff := effectiveConfig{ConfigFile: configPath.ConfigPath}
	for _, v := range settings.Values {
		eff.Settings = append(eff.Settings, settingEntry{
			Key:      v.Key,
			Value:    v.Value,
			Source:   v.Source,
			Shadowed: v.Shadowed,
		})
	}

	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(eff)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Print(string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(eff, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Println(string(data))
	default:
		output.Println(fmt.Sprintf("Config file: %s (%s)", output.StyleNoun.Render(configPath.ConfigPath), configPath.Source))
		tbl := output.NewTable("KEY", "VALUE", "SOURCE")
		for _, s := range eff.Settings {
			tbl.Row(s.Key, displayValue(s.Value), string(s.Source))
		}
		output.Println(tbl.String())
	}

	return nil
}

func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return output.StyleDim.Render("(unset)")
	case string:
		if val == "" {
			return output.StyleDim.Render("(unset)")
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}

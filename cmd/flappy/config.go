package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate variant configurations",
}

var configShowCmd = &cobra.Command{
	Use:   "show [variant]",
	Short: "Print the effective configuration of a variant",
	Long: `Print the configuration a variant would be played with, after applying
--config or the files in ~/.flappy/configs and ./configs.

Examples:
  flappy config show
  flappy config show glide
  flappy config show flappy --config ./my-flappy.yaml > custom.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Long: `Parse a configuration file on top of a variant's defaults and report
the first invalid value.

Examples:
  flappy config validate ./my-flappy.yaml
  flappy config validate ./slow.yaml --variant glide`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigValidate,
}

var flagValidateVariant string

func init() {
	configValidateCmd.Flags().StringVar(&flagValidateVariant, "variant", config.VariantClassic, "Variant whose defaults the file extends")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(_ *cobra.Command, args []string) error {
	variant := config.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'flappy list')", variant)
	}

	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigValidate(_ *cobra.Command, args []string) error {
	if !registry.Exists(flagValidateVariant) {
		return fmt.Errorf("unknown variant %q (run 'flappy list')", flagValidateVariant)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", args[0], err)
	}
	if _, err := config.Parse(flagValidateVariant, data); err != nil {
		return err
	}

	fmt.Printf("%s: ok (%s)\n", args[0], flagValidateVariant)
	return nil
}

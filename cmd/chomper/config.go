package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomper/internal/config"
)

var flagInitConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default config file",
	Long: `Print the default configuration YAML to stdout.

With --init, write it to ~/.chomper/configs/chomper.yaml instead so it
can be edited. 'chomper play' picks it up from there automatically.

Examples:
  chomper config
  chomper config --init
  chomper config > ./configs/chomper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInitConfig, "init", false, "Write the default config to ~/.chomper/configs/chomper.yaml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagInitConfig {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".chomper", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	path := filepath.Join(dir, "chomper.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

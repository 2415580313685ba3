package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configOpts struct {
	write bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults and the config file are merged.

With --write, the result is saved to the config path instead, creating it
if needed. This is a quick way to start a config file from the defaults.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configOpts.write, "write", false,
		"Write the effective config to the config path")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configOpts.write {
		path := configPathOrDefault()
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}

	data, err := cfg.MarshalTOML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// cmd/pted/root.go
// Root command for the pted CLI. It wires the global flags, loads
// configuration and the logger, and registers the sub-commands defined
// in the sibling files of this package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lumenedit/pted/internal/config"
	"github.com/lumenedit/pted/internal/logging"
)

var (
	cfgFile string
	logJSON bool
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:   "pted",
		Short: "A scriptable piece-table text editor",
		Long:  `pted drives a piece-table editing engine from the command line or from a script, for tests and tooling rather than interactive use.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRuntime()
		},
	}
)

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to pted.toml")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs instead of console logs")

	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newReplaceCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newRedoCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newRecentCmd())
	rootCmd.AddCommand(newScriptCmd())
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pted")
		viper.SetConfigType("toml")
		if home, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(home + "/pted")
		}
	}
	viper.SetEnvPrefix("PTED")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// initRuntime loads the structured config via internal/config (TOML,
// the detail viper's loose decoding does not give us) and installs the
// global logger. viper only resolves which config path to read; the
// PTED_ environment overrides are applied by config.Load.
func initRuntime() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = cfgFile
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	format := cfg.Logging.Format
	switch {
	case logJSON:
		format = "json"
	case !rootCmd.Flags().Changed("log-json") && !term.IsTerminal(int(os.Stdout.Fd())):
		// Piped or redirected output (a script or CI log, say): prefer
		// structured logs over console's color codes and box-drawing.
		format = "json"
	}

	logger, err := logging.New(cfg.Logging.Level, format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.Set(logger)

	return nil
}

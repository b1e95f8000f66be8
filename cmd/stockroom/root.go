// Root command for the stockroom CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// argsAccepted flips once cobra has resolved the command and validated its
// flags and arguments. Errors raised before that point are usage errors.
var argsAccepted bool

// Config values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configBackend   string
	configDataDir   string
	configSnapshot  string
	configThreshold int
)

var rootCmd = &cobra.Command{
	Use:     "stockroom",
	Short:   "Stockroom is a local inventory tracker",
	Version: stockroom.Version,
	Long: `Stockroom tracks stock quantities keyed by item name. Quantities are
kept in memory during a command and persisted to a JSON file (default) or a
SQLite database between runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		argsAccepted = true

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSnapshot = cfg.GetString(cfgKeySnapshot)
		configThreshold = cfg.GetInt(cfgKeyThreshold)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(lowCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(demoCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > STOCKROOM_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STOCKROOM_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

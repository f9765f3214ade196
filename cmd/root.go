package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cipherplay/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cipherplay",
	Short: "Symbol cipher game for kids",
	Long:  "Şifre Çözücü: a terminal puzzle where children decode animal sequences into symbols using picture clues.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible rounds (overrides CIPHER_SEED)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file (overrides CIPHER_LOG_FILE)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug-level logging (overrides CIPHER_DEBUG)")

	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment configuration, then applies any flags
// the user set explicitly. Flags win over env vars.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	return cfg, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/enterprisetech/admin-seed/config"
	"github.com/enterprisetech/admin-seed/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "adminseed",
	Short: "Seed the admin panel database with demo content",
	Long: `adminseed prepares and populates the admin panel database.

Examples:

  adminseed migrate
  adminseed seed
  adminseed seed --clear
  adminseed status
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seed.config.yaml)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
}

// setup loads .env, the config file and the environment, and builds the
// logger every command uses.
func setup() (*config.Config, *zap.Logger, error) {
	config.LoadEnv()

	v := viper.GetViper()
	if err := config.Init(v, cfgFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

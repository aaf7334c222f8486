package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/config"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "upkeep",
		Short: "Inspect purchases and content importers for your sites",
		Long: `upkeep reads a snapshot of billing and importer data and shows what
the management console would offer for each record: which purchases can be
cancelled, removed, or have their card updated, and what each importer's
master control does.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/upkeep/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("snapshot", config.DefaultSnapshotPath, "snapshot file to read (YAML or JSON)")
	rootCmd.PersistentFlags().String("locale", "en", "locale for labels and dates")
	rootCmd.PersistentFlags().String("as-of", "", "evaluate as if now were this RFC 3339 instant")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeySnapshot, rootCmd.PersistentFlags().Lookup("snapshot"))
	_ = viper.BindPFlag(config.KeyLocale, rootCmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag(config.KeyAsOf, rootCmd.PersistentFlags().Lookup("as-of"))

	rootCmd.AddCommand(purchasesCmd())
	rootCmd.AddCommand(importerCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/upkeep", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("UPKEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if err := common.SetupLogger(os.Stderr, settings.LogLevel, settings.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "upkeep %s\n", version)
			slog.Debug("upkeep version", "version", version)
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	v        *viper.Viper
	now      func() time.Time
	logOut   io.Writer
	cfgFile  string
	settings config.Settings
}

func newApp() *app {
	return &app{
		v:      viper.New(),
		now:    time.Now,
		logOut: os.Stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nf",
		Short: "💰 Personal and vendor finance ledger",
		Long: `nf keeps two independent ledgers, one for personal money and one for
vendor and client business, and turns them into summaries, charts and
insights right in your terminal.

Amounts are signed: income is positive, expenses are negative.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/nf/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("backend", config.BackendSQLite, "storage backend (sqlite, file)")
	rootCmd.PersistentFlags().String("db", "", "database path for the sqlite backend")
	rootCmd.PersistentFlags().String("data-dir", "", "snapshot directory for the file backend")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("storage.backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = a.v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = a.v.BindPFlag("storage.dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.editCmd())
	rootCmd.AddCommand(a.deleteCmd())
	rootCmd.AddCommand(a.clearCmd())
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.summaryCmd())
	rootCmd.AddCommand(a.analyticsCmd())
	rootCmd.AddCommand(a.insightsCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(a.importOFXCmd())
	rootCmd.AddCommand(a.sectionCmd())
	rootCmd.AddCommand(a.categoriesCmd())
	rootCmd.AddCommand(a.dashboardCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd(newApp()).ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints advisory errors as warnings and everything else as a failure.
func reportError(w io.Writer, err error) {
	if msg, ok := common.UserMessage(err); ok {
		fmt.Fprintln(w, cli.FormatWarning(msg))
		slog.Debug("command rejected", "error", err)
		return
	}
	fmt.Fprintln(w, cli.FormatError(err.Error()))
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(fmt.Sprintf("%s/.config/nf", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("NF")
	a.v.SetEnvKeyReplacer(config.EnvKeyReplacer())
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.settings = settings

	if err := a.setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func (a *app) setupLogging() error {
	level, err := common.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	return common.SetupLogger(a.logOut, level, a.settings.LogFormat)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nf version %s\n", version)
		},
	}
}

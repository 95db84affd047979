package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cloudreve "github.com/driveclient/go-cloudreve"
	"github.com/driveclient/go-cloudreve/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *cloudreve.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudreve-cli",
	Short: "A command line client for Cloudreve servers",
	Long: `cloudreve-cli talks to a Cloudreve file-storage server over its HTTP
API. It detects whether the server speaks the v3 or v4 API generation
and routes every command accordingly.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(quotaCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration, builds the logger and connects
// the client.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	opts := []cloudreve.Option{
		cloudreve.WithLogger(logger),
		cloudreve.WithTimeout(30 * time.Second),
	}
	if cfg.Server.Version != "auto" {
		v, err := cloudreve.ParseVersion(cfg.Server.Version)
		if err != nil {
			return err
		}
		opts = append(opts, cloudreve.WithVersion(v))
	}

	client, err = cloudreve.New(cmd.Context(), cfg.Server.URL, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Server.URL, err)
	}

	if cfg.Auth.Token != "" {
		client.SetToken(cfg.Auth.Token)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only makes sense on a real terminal.
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server versions",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("cloudreve-cli %s (built %s)\n", version, buildTime)
	fmt.Printf("API generation: %s\n", client.Version())

	serverVersion, err := client.ServerVersion(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to ping server: %w", err)
	}
	fmt.Printf("Server version: %s\n", serverVersion)
	return nil
}

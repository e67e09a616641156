package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/magiscan/magiscan/internal/config"
	"github.com/magiscan/magiscan/internal/env"
	"github.com/magiscan/magiscan/internal/logger"
	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/sigjson"
	fmtutil "github.com/magiscan/magiscan/pkg/util/format"
)

const AppName = env.AppName

var cfg config.Config

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - file type identification and mismatch detection tool",
	}

	rootCmd.PersistentFlags().String("config", "", "path to a configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("db", "", "path to a custom signature database (JSON)")
	rootCmd.PersistentFlags().String("max-read-bytes", "8KB", "maximum number of header bytes to read per file")

	config.BindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	config.BindFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	config.BindFlag("database_file", rootCmd.PersistentFlags().Lookup("db"))
	config.BindFlag("max_read_bytes", rootCmd.PersistentFlags().Lookup("max-read-bytes"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	}

	rootCmd.AddCommand(DefineAnalyzeCommand())
	rootCmd.AddCommand(DefineScanCommand())
	rootCmd.AddCommand(DefineFormatsCommand())
	rootCmd.AddCommand(DefineShellCommand())
	rootCmd.AddCommand(DefineDBCommand())

	return rootCmd.Execute()
}

// newLogger builds the command logger from the loaded configuration.
func newLogger() *logger.Logger {
	return logger.New(os.Stderr, logger.ParseLevel(cfg.LogLevel))
}

// newDetector assembles the detector the commands share: the default
// catalog, or a custom database when one is configured.
func newDetector(log *logger.Logger) (*magic.Detector, error) {
	maxReadBytes := magic.DefaultMaxReadBytes
	if cfg.MaxReadBytes != "" {
		n, err := fmtutil.ParseBytes(cfg.MaxReadBytes)
		if err != nil {
			return nil, err
		}
		maxReadBytes = int(n)
	}

	var db *magic.Database
	if cfg.DatabaseFile != "" {
		loaded, skipped, err := sigjson.Load(cfg.DatabaseFile)
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			log.Warnf("skipped %d invalid signature entries in %s", skipped, cfg.DatabaseFile)
		}
		db = loaded
	}
	return magic.NewDetector(db, maxReadBytes), nil
}

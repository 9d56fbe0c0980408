package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "credkeeper",
	Short: "In-memory credential manager with password rotation policy",
	Long: `credkeeper keeps account credentials in memory and rotates passwords
under a composition policy (lowercase, uppercase and digit) while refusing
any of the three most recent passwords.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides CREDKEEPER_LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd, selftestCmd)
}

func newLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if strings.TrimSpace(level) == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var failed checksFailedError
		if !errors.As(err, &failed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

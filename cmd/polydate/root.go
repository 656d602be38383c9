package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var (
	cfgFile string
	verbose bool
)

// fileConfig is what ~/.polydate.toml may set.
type fileConfig struct {
	DefaultFormat string `toml:"default_format"`
}

var cfg fileConfig

var rootCmd = &cobra.Command{
	Use:   "polydate",
	Short: "Multi-representation calendar date toolkit",
	Long: `polydate converts, compares, adds, and diffs calendar dates across
five co-equal representations: plain year/month/day, the Nth weekday of a
month, a linear day count, and two business-day forms.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return loadConfig()
	},
}

// Execute runs the root command; main's sole entry point.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.polydate.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
}

// loadConfig reads ~/.polydate.toml (or --config) if present. A missing
// file is not an error; the CLI's flag defaults stand in for it.
func loadConfig() error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".polydate.toml")
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fmt.Errorf("polydate: loading config %q: %w", path, err)
	}
	log.WithField("path", path).Debug("loaded config")
	return nil
}

// kindFromFlag maps a --kind flag value to a polydate.Kind, defaulting to
// YMD for an empty or unrecognized string.
func kindFromFlag(s string) polydate.Kind {
	switch s {
	case "ymcw":
		return polydate.YMCW
	case "daisy":
		return polydate.DAISY
	case "bizda":
		return polydate.BIZDA
	case "bizsi":
		return polydate.BIZSI
	default:
		return polydate.YMD
	}
}

// formatDate runs FormatDate with a growing buffer, in case the caller's
// format produces more than a typical date's worth of bytes (a long
// weekday/month name, say).
func formatDate(format string, v polydate.Value) string {
	buf := make([]byte, 64)
	n := polydate.FormatDate(buf, format, v)
	if n > len(buf) {
		buf = make([]byte, n)
		n = polydate.FormatDate(buf, format, v)
	}
	return string(buf[:n])
}

func formatDuration(format string, dur polydate.Value) string {
	buf := make([]byte, 64)
	n := polydate.FormatDuration(buf, format, dur)
	if n > len(buf) {
		buf = make([]byte, n)
		n = polydate.FormatDuration(buf, format, dur)
	}
	return string(buf[:n])
}

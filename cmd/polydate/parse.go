package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse a date string and print its kind and fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := parseFormat
		if format == "" {
			format = cfg.DefaultFormat
		}
		v, consumed, err := polydate.ParseDate(args[0], format)
		if err != nil {
			log.WithError(err).WithField("text", args[0]).Debug("parse failed")
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "kind=%s consumed=%d year=%d month=%d day=%d count=%d weekday=%s daisy=%d\n",
			v.Kind, consumed, v.Year, v.Month, v.Day, v.Count, v.Weekday, v.Daisy)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "",
		"format string (default: the config's default_format, or the null-format standard parser)")
	rootCmd.AddCommand(parseCmd)
}

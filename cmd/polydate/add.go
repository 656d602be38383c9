package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var (
	addDateFormat string
	addOutFormat  string
)

var addCmd = &cobra.Command{
	Use:   "add <date> <duration>",
	Short: "Add a duration (dt_strpdur grammar, e.g. 3d, -2m, 1y, 5b) to a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := polydate.ParseDate(args[0], addDateFormat)
		if err != nil {
			return err
		}
		dur, _, err := polydate.ParseDuration(args[1])
		if err != nil {
			return err
		}
		out := polydate.Add(v, dur)
		if out.IsUnknown() {
			return fmt.Errorf("polydate: could not add %q to %q", args[1], args[0])
		}
		outFormat := addOutFormat
		if outFormat == "" {
			outFormat = addDateFormat
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDate(outFormat, out))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDateFormat, "format", "", "format of <date> (default: null-format standard parser)")
	addCmd.Flags().StringVar(&addOutFormat, "out-format", "", "format to print the result in (default: same as --format)")
	rootCmd.AddCommand(addCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var (
	diffFormat string
	diffKind   string
)

var diffCmd = &cobra.Command{
	Use:   "diff <date1> <date2>",
	Short: "Print the duration that Add(date1, diff) == date2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := polydate.ParseDate(args[0], diffFormat)
		if err != nil {
			return err
		}
		b, _, err := polydate.ParseDate(args[1], diffFormat)
		if err != nil {
			return err
		}
		kind := kindFromFlag(diffKind)
		dur := polydate.Diff(kind, a, b)
		if dur.IsUnknown() {
			return fmt.Errorf("polydate: could not diff %q and %q as %s", args[0], args[1], kind)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDuration("", dur))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffFormat, "format", "", "format of the input dates (default: null-format standard parser)")
	diffCmd.Flags().StringVar(&diffKind, "kind", "ymd", "duration kind: ymd, ymcw, daisy, or bizsi")
	rootCmd.AddCommand(diffCmd)
}

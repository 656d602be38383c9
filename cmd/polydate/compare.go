package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var compareFormat string

var compareCmd = &cobra.Command{
	Use:   "compare <date1> <date2>",
	Short: "Print -2 (incomparable), -1, 0, or 1 comparing two same-kind dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := polydate.ParseDate(args[0], compareFormat)
		if err != nil {
			return err
		}
		b, _, err := polydate.ParseDate(args[1], compareFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), polydate.Compare(a, b))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareFormat, "format", "", "format of the input dates (default: null-format standard parser)")
	rootCmd.AddCommand(compareCmd)
}

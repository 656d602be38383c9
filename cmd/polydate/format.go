package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
)

var formatCmd = &cobra.Command{
	Use:   "format <text> <in-format> <out-format>",
	Short: "Reparse a date under one format and print it under another",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := polydate.ParseDate(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDate(args[2], v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

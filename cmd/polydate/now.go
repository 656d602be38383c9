package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkazumine/polydate"
	"github.com/nkazumine/polydate/internal/clock"
)

var (
	nowKind   string
	nowFormat string
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current date in the given representation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := polydate.NowAs(kindFromFlag(nowKind), clock.Real{})
		fmt.Fprintln(cmd.OutOrStdout(), formatDate(nowFormat, v))
		return nil
	},
}

func init() {
	nowCmd.Flags().StringVar(&nowKind, "kind", "ymd", "kind to express the current date in: ymd, ymcw, daisy, bizda, or bizsi")
	nowCmd.Flags().StringVar(&nowFormat, "format", "", "format string (default: the kind's alias)")
	rootCmd.AddCommand(nowCmd)
}

package main

import (
	"os"

	"github.com/npillmayer/trema/markup/markupdbg"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "dot <markup> [stylesheet]",
		Short: "Write a GraphViz diagram of a styled element tree",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, sheet, err := loadDocument(args)
			if err != nil {
				return err
			}
			if outFile == "" {
				return markupdbg.ToGraphViz(tree, cmd.OutOrStdout(), sheet)
			}
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer f.Close()
			return markupdbg.ToGraphViz(tree, f, sheet)
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default is stdout)")
	return cmd
}

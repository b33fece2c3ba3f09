/*
Command trema is a tool for working with markup documents and stylesheets
outside of a GUI application.

    trema check app.txml app.tss     # print element tree and computed styles
    trema dot app.txml app.tss       # write a GraphViz diagram
    trema frames -n 3 app.txml       # render frames against a recording backend

Stylesheets with a file extension of ".css" are imported as plain CSS.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/trema/config"
	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style/cssom"
	"github.com/npillmayer/trema/style/cssom/douceuradapter"
	"github.com/npillmayer/trema/style/tss"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	conf    *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trema",
		Short:         "trema inspects and renders styled markup documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if err = config.SetupTracing(c); err != nil {
				return fmt.Errorf("cannot set up tracing: %w", err)
			}
			conf = c
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./trema.yaml)")
	root.AddCommand(newCheckCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newFramesCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadDocument reads a markup document and an optional stylesheet.
func loadDocument(args []string) (*markup.Element, *cssom.Stylesheet, error) {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return nil, nil, err
	}
	tree, err := markup.ParseWithRoot(string(text), conf.RootTag)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", args[0], err)
	}
	if len(args) < 2 {
		return tree, nil, nil
	}
	sheet, err := loadStylesheet(args[1])
	if err != nil {
		return nil, nil, err
	}
	return tree, sheet, nil
}

func loadStylesheet(path string) (*cssom.Stylesheet, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sheet *cssom.Stylesheet
	if strings.EqualFold(filepath.Ext(path), ".css") {
		sheet, err = douceuradapter.Import(string(text))
	} else {
		sheet, err = tss.ParseWithLimit(string(text), conf.MaxSubstitutions)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

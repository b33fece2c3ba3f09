package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/state"
	"github.com/npillmayer/trema/style/css"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <markup> [stylesheet]",
		Short: "Parse a document and print its element tree and computed styles",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, sheet, err := loadDocument(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, markup.Dump(tree))
			if sheet.Empty() {
				return nil
			}
			fmt.Fprintf(out, "%d rules, %d variables\n\n", len(sheet.Rules), len(sheet.Variables))
			engine := css.NewEngine(sheet, css.MaxSubstitutions(conf.MaxSubstitutions))
			ctx := state.NewManager().CreateContext(sheet, nil)
			printStyles(out, engine, ctx, tree, state.Only)
			return nil
		},
	}
}

// printStyles prints the stable id, the matching rules and the computed
// style of every element which has at least one matching rule.
func printStyles(w io.Writer, engine *css.Engine, ctx *state.Context, el *markup.Element,
	sib state.Sibling) {
	//
	ancestors := ctx.Ancestors()
	if rules := engine.MatchingRules(el, ancestors); len(rules) > 0 {
		fmt.Fprintln(w, ctx.StableID(el, sib))
		for _, r := range rules {
			fmt.Fprintf(w, "    matched %q (specificity %d)\n", r.Selector, r.Specificity)
		}
		fmt.Fprintf(w, "    %s\n", engine.ComputeStyle(el, ancestors))
	}
	children := el.Elements()
	sibs := state.Siblings(children)
	ctx.Push(el, sib)
	defer ctx.Pop()
	for i, ch := range children {
		printStyles(w, engine, ctx, ch, sibs[i])
	}
}

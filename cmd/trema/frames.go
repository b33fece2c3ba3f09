package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/render"
	"github.com/npillmayer/trema/render/recorder"
	"github.com/npillmayer/trema/style/cssom"
	"github.com/spf13/cobra"
)

func newFramesCmd() *cobra.Command {
	var (
		n      int
		clicks []string
	)
	cmd := &cobra.Command{
		Use:   "frames <markup> [stylesheet]",
		Short: "Render frames against a recording backend and print the frame log",
		Long: `Renders a document for a number of frames against a backend which records
every call. Button clicks may be scripted with --click; every click is
consumed by the first button with a matching label. Events are printed as
comments in the frame log.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("number of frames must be positive, is %d", n)
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var sheet *cssom.Stylesheet
			if len(args) > 1 {
				if sheet, err = loadStylesheet(args[1]); err != nil {
					return err
				}
			}
			rec := recorder.New()
			for _, label := range clicks {
				rec.Click(label)
			}
			sink := render.NewTextSink(cmd.OutOrStdout())
			opts := append(render.FromConfig(conf), render.WithSink(sink))
			r, err := render.New(rec, opts...)
			if err != nil {
				return err
			}
			tree, markupErr := markup.ParseWithRoot(string(text), conf.RootTag)
			if markupErr != nil {
				// let the renderer display the error
				tree = markup.ErrorTree(conf.RootTag, markupErr)
			}
			for name := range handlerNames(tree) {
				name := name
				r.RegisterHandler(name, func() {
					sink.Log(fmt.Sprintf("// event %q", name))
				})
			}
			for i := 0; i < n; i++ {
				if err = r.RenderTree(tree, sheet); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "// %d widget states\n", r.State().Len())
			if markupErr != nil {
				return fmt.Errorf("%s: %w", args[0], markupErr)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "frames", "n", 1, "number of frames to render")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "script a click on the button with this label")
	return cmd
}

// handlerNames collects the event handler names referenced in a tree.
func handlerNames(el *markup.Element) map[string]bool {
	names := make(map[string]bool)
	var walk func(*markup.Element)
	walk = func(e *markup.Element) {
		for _, attr := range []string{"onClick", "onChange"} {
			if v, ok := e.Attr(attr); ok && v != "" {
				names[v] = true
			}
		}
		for _, ch := range e.Elements() {
			walk(ch)
		}
	}
	walk(el)
	return names
}

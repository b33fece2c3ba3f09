/*
Package markupdbg implements helpers to debug styled markup trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markupdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/css"
	"github.com/npillmayer/trema/style/cssom"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	NodeTmpl    *template.Template
	TextTmpl    *template.Template
	EdgeTmpl    *template.Template
	StyleTmpl   *template.Template
	StyleEdge   *template.Template
	engine      *css.Engine
	names       map[interface{}]string
	styleGroups []style.Kind
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element, a
// Writer, and an optional stylesheet. If sheet is non-nil, every element
// is annotated with its computed style, with properties grouped by kind
// (colors, numbers, strings).
func ToGraphViz(root *markup.Element, w io.Writer, sheet *cssom.Stylesheet) error {
	head, err := template.New("markup").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := &graphParamsType{
		Fontname:    "Helvetica",
		names:       make(map[interface{}]string, 256),
		styleGroups: []style.Kind{style.KindColor, style.KindNumber, style.KindString},
	}
	funcs := template.FuncMap{
		"shortstring": shortText,
		"escape":      html.EscapeString,
	}
	gparams.NodeTmpl = template.Must(template.New("element").Funcs(funcs).Parse(elementNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("text").Funcs(funcs).Parse(textNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Funcs(funcs).Parse(styleGroupTmpl))
	gparams.StyleEdge = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	if sheet != nil {
		gparams.engine = css.NewEngine(sheet)
	}
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		if err = elements(root, nil, w, gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an element tree and a testing.T, it
// will create a GraphViz image of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *markup.Element, sheet *cssom.Stylesheet, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "markup.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing markup digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile, sheet); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing markup tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Name string
	El   *markup.Element
	Text string
}

type edge struct {
	From, To string
}

type styleGroup struct {
	Name       string
	Title      string
	Properties []property
}

type property struct {
	Key, Value string
}

func elements(el *markup.Element, ancestors []*markup.Element, w io.Writer,
	gparams *graphParamsType) error {
	//
	name := gparams.nameOf(el)
	if err := gparams.NodeTmpl.Execute(w, node{Name: name, El: el}); err != nil {
		return err
	}
	if err := styles(el, ancestors, name, w, gparams); err != nil {
		return err
	}
	ancestors = append(ancestors, el)
	for i, ch := range el.Children {
		var chname string
		switch c := ch.(type) {
		case *markup.Element:
			if err := elements(c, ancestors, w, gparams); err != nil {
				return err
			}
			chname = gparams.nameOf(c)
		case markup.Text:
			s := strings.TrimSpace(string(c))
			if s == "" {
				continue
			}
			chname = fmt.Sprintf("%s_t%d", name, i)
			if err := gparams.TextTmpl.Execute(w, node{Name: chname, Text: s}); err != nil {
				return err
			}
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return err
		}
	}
	return nil
}

func styles(el *markup.Element, ancestors []*markup.Element, name string, w io.Writer,
	gparams *graphParamsType) error {
	//
	if gparams.engine == nil {
		return nil
	}
	cs := gparams.engine.ComputeStyle(el, ancestors)
	prev := name
	for _, kind := range gparams.styleGroups {
		pg := styleGroup{
			Name:  fmt.Sprintf("%s_%s", name, kind),
			Title: kind.String(),
		}
		for _, k := range cs.Keys() {
			if cs[k].Kind == kind {
				pg.Properties = append(pg.Properties, property{k, cs[k].String()})
			}
		}
		if len(pg.Properties) == 0 {
			continue
		}
		if err := gparams.StyleTmpl.Execute(w, pg); err != nil {
			return err
		}
		if err := gparams.StyleEdge.Execute(w, edge{prev, pg.Name}); err != nil {
			return err
		}
		prev = pg.Name
	}
	return nil
}

func (gparams *graphParamsType) nameOf(el *markup.Element) string {
	name := gparams.names[el]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(gparams.names)+1)
		gparams.names[el] = name
	}
	return name
}

func shortText(s string) string {
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = "\"\\\"" + s + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elementNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .El.Tag }} shape=ellipse style=filled fillcolor={{ if .El.ID }}lightgoldenrod{{ else }}lightblue3{{ end }} ] ;
`

const textNodeTmpl = `{{ .Name }}	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Title }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ escape .Key }}:</td><td>{{ escape .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`

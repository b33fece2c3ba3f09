/*
Package recorder provides a render.Backend which records every call.

A Recorder stands in for a real GUI library in tests and in tooling. User
interaction is scripted in advance:

    rec := recorder.New()
    rec.Click("Save")              // next Button("Save") reports a click
    rec.Edit("Name", "Alice")      // next InputText labeled "Name" is edited
    r, _ := render.New(rec)
    r.Render(doc, sheet)
    fmt.Println(rec.Ops())

Scripted interactions are consumed by the first matching widget call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package recorder

import (
	"fmt"
	"strings"

	"github.com/npillmayer/trema/render"
	"github.com/npillmayer/trema/style"
)

// Call is a recorded backend call.
type Call struct {
	Op   string        // name of the backend method
	Args []interface{} // arguments, after a widget updated them
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		switch v := a.(type) {
		case string:
			args[i] = fmt.Sprintf("%q", v)
		default:
			args[i] = fmt.Sprintf("%v", v)
		}
	}
	return c.Op + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a scriptable render.Backend.
type Recorder struct {
	calls    []Call
	clicks   map[string]int
	edits    map[string][]interface{}
	closed   map[string]bool
	failures map[string]string
	depth    int // window nesting
	colors   int // style color stack
}

var _ render.Backend = &Recorder{}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{
		clicks:   make(map[string]int),
		edits:    make(map[string][]interface{}),
		closed:   make(map[string]bool),
		failures: make(map[string]string),
	}
}

// Click scripts a click on the next button with the given label.
func (r *Recorder) Click(label string) {
	r.clicks[label]++
}

// Edit scripts an edit of the next text input with the given label.
func (r *Recorder) Edit(label string, value string) {
	r.edits[label] = append(r.edits[label], value)
}

// Slide scripts a change of the next slider with the given label.
func (r *Recorder) Slide(label string, value float64) {
	r.edits[label] = append(r.edits[label], value)
}

// Toggle scripts a toggle of the next checkbox with the given label.
func (r *Recorder) Toggle(label string) {
	r.edits[label] = append(r.edits[label], true)
}

// Collapse makes windows with the given title report as not opened.
func (r *Recorder) Collapse(title string) {
	r.closed[title] = true
}

// FailOn makes the backend panic whenever op is called with a first
// argument of label.
func (r *Recorder) FailOn(op, label string) {
	r.failures[op] = label
}

// Calls returns all recorded calls.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Ops returns the recorded calls formatted as strings.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.String()
	}
	return ops
}

// Count returns how often op has been called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Balanced reports whether every Begin has been matched by an End and
// every pushed style color has been popped.
func (r *Recorder) Balanced() bool {
	return r.depth == 0 && r.colors == 0
}

// Reset clears the recorded calls. Scripted interactions are kept.
func (r *Recorder) Reset() {
	r.calls = nil
}

func (r *Recorder) record(op string, args ...interface{}) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
	if label, ok := r.failures[op]; ok && len(args) > 0 && args[0] == label {
		panic(fmt.Sprintf("recorder: scripted failure in %s(%q)", op, label))
	}
}

func (r *Recorder) nextEdit(label string) (interface{}, bool) {
	q := r.edits[label]
	if len(q) == 0 {
		return nil, false
	}
	r.edits[label] = q[1:]
	return q[0], true
}

// --- render.Backend --------------------------------------------------------

func (r *Recorder) Begin(title string) bool {
	r.depth++
	r.record("Begin", title)
	return !r.closed[title]
}

func (r *Recorder) End() {
	r.depth--
	r.record("End")
}

func (r *Recorder) Text(text string) {
	r.record("Text", text)
}

func (r *Recorder) TextColored(c style.Color, text string) {
	r.record("TextColored", c, text)
}

func (r *Recorder) Button(label string) bool {
	r.record("Button", label)
	if r.clicks[label] > 0 {
		r.clicks[label]--
		return true
	}
	return false
}

func (r *Recorder) InputTextWithHint(label, hint string, buf *string, size int) bool {
	e, ok := r.nextEdit(label)
	if s, isStr := e.(string); ok && isStr {
		*buf = s
	} else {
		ok = false
	}
	r.record("InputTextWithHint", label, hint, *buf, size)
	return ok
}

func (r *Recorder) SliderFloat(label string, v *float64, min, max float64) bool {
	e, ok := r.nextEdit(label)
	if x, isNum := e.(float64); ok && isNum {
		*v = x
	} else {
		ok = false
	}
	r.record("SliderFloat", label, *v, min, max)
	return ok
}

func (r *Recorder) Checkbox(label string, checked *bool) bool {
	_, ok := r.nextEdit(label)
	if ok {
		*checked = !*checked
	}
	r.record("Checkbox", label, *checked)
	return ok
}

func (r *Recorder) SameLine(offset, spacing float64) {
	r.record("SameLine", offset, spacing)
}

func (r *Recorder) Spacing() {
	r.record("Spacing")
}

func (r *Recorder) Separator() {
	r.record("Separator")
}

func (r *Recorder) PushStyleColor(col render.StyleColor, c style.Color) {
	r.colors++
	r.record("PushStyleColor", col, c)
}

func (r *Recorder) PopStyleColor(n int) {
	r.colors -= n
	r.record("PopStyleColor", n)
}

func (r *Recorder) SetNextItemWidth(w float64) {
	r.record("SetNextItemWidth", w)
}

func (r *Recorder) SetNextWindowSize(w, h float64) {
	r.record("SetNextWindowSize", w, h)
}

package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/state"
	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/css"
)

// frameRenderer renders the elements of a single frame.
type frameRenderer struct {
	r      *Renderer
	b      Backend
	ctx    *state.Context
	engine *css.Engine
}

// element renders an element and its subtree. A panic while rendering is
// reported and confined to the element.
func (f *frameRenderer) element(el *markup.Element, sib state.Sibling) {
	defer func() {
		if x := recover(); x != nil {
			tracer().Errorf("render: error rendering <%s>: %v", el.Tag, x)
			if f.r.sink != nil {
				f.r.sink.Log(fmt.Sprintf("// Render error on <%s>: %v", el.Tag, x))
			}
		}
	}()
	cs := f.engine.ComputeStyle(el, f.ctx.Ancestors())
	kind := el.Kind()
	if f.ctx.Depth() == 0 && el.Tag == f.r.rootTag {
		kind = markup.KindApp // custom root tags act as App
	}
	switch kind {
	case markup.KindApp, markup.KindBody:
		f.children(el, sib)
	case markup.KindHead:
		// metadata only
	case markup.KindWindow:
		f.window(el, cs, sib)
	case markup.KindText:
		f.text(el, cs)
	case markup.KindButton:
		f.button(el, cs)
	case markup.KindInputText:
		f.inputText(el, cs, sib)
	case markup.KindSliderFloat:
		f.slider(el, cs, sib)
	case markup.KindCheckbox:
		f.checkbox(el, cs, sib)
	case markup.KindSameLine:
		f.b.SameLine(floatAttr(el, "offset", 0), floatAttr(el, "spacing", -1))
	case markup.KindSpacing:
		f.b.Spacing()
	case markup.KindSeparator:
		f.b.Separator()
	default:
		tracer().Infof("render: no renderer for tag <%s>", el.Tag)
	}
}

// children renders the children of a container. Text runs are rendered as
// plain text.
func (f *frameRenderer) children(el *markup.Element, sib state.Sibling) {
	f.ctx.Push(el, sib)
	defer f.ctx.Pop()
	sibs := state.Siblings(el.Elements())
	i := 0
	for _, ch := range el.Children {
		switch c := ch.(type) {
		case markup.Text:
			if s := strings.TrimSpace(string(c)); s != "" {
				f.b.Text(s)
			}
		case *markup.Element:
			f.element(c, sibs[i])
			i++
		}
	}
}

func (f *frameRenderer) window(el *markup.Element, cs style.Computed, sib state.Sibling) {
	title := el.AttrOr("title", "Window")
	if w, ok := cs.Number("width"); ok {
		h, ok := cs.Number("height")
		if !ok || h == 0 {
			h = f.r.winH
		}
		f.b.SetNextWindowSize(w, h)
	}
	pushed := f.pushColors(cs, colorSlot{"window-background-color", ColWindowBg})
	opened := f.b.Begin(title)
	f.pop(pushed)
	defer f.b.End()
	if opened {
		f.children(el, sib)
	}
}

func (f *frameRenderer) text(el *markup.Element, cs style.Computed) {
	txt := el.TextContent()
	c, ok := cs.Color("text-color")
	if !ok {
		c, ok = cs.Color("color")
	}
	if ok {
		f.b.TextColored(c, txt)
		return
	}
	f.b.Text(txt)
}

func (f *frameRenderer) button(el *markup.Element, cs style.Computed) {
	label := el.TextContent()
	if label == "" {
		label = el.AttrOr("label", "Button")
	}
	f.itemWidth(cs)
	bg := "button-color"
	if _, ok := cs.Color(bg); !ok {
		bg = "background-color"
	}
	pushed := f.pushColors(cs,
		colorSlot{bg, ColButton},
		colorSlot{"button-color-hover", ColButtonHovered},
		colorSlot{"button-color-active", ColButtonActive},
		colorSlot{"color", ColText},
	)
	// derive hover and active shades from the base color if not given
	if c, ok := cs.Color(bg); ok {
		if _, set := cs.Color("button-color-hover"); !set {
			f.b.PushStyleColor(ColButtonHovered, c.Shade(40))
			pushed++
		}
		if _, set := cs.Color("button-color-active"); !set {
			f.b.PushStyleColor(ColButtonActive, c.Shade(-50))
			pushed++
		}
	}
	defer f.pop(pushed)
	if f.b.Button(label) {
		f.fire(el, "onClick")
	}
}

func (f *frameRenderer) inputText(el *markup.Element, cs style.Computed, sib state.Sibling) {
	id := f.ctx.StableID(el, sib)
	ws := f.ctx.Store.GetOrCreate(id, state.StringValue(el.AttrOr("value", "")))
	buf := ws.Str()
	f.itemWidth(cs)
	defer f.pop(f.pushFrameColors(cs))
	if f.b.InputTextWithHint(el.AttrOr("label", ""), el.AttrOr("hint", ""), &buf, f.r.bufSize) {
		f.ctx.Store.Set(id, state.StringValue(truncate(buf, f.r.bufSize-1)))
		f.fire(el, "onChange")
	}
}

func (f *frameRenderer) slider(el *markup.Element, cs style.Computed, sib state.Sibling) {
	id := f.ctx.StableID(el, sib)
	ws := f.ctx.Store.GetOrCreate(id, state.NumberValue(floatAttr(el, "value", 0.5)))
	v := 0.5
	if n, ok := ws.Value.(state.NumberValue); ok {
		v = float64(n)
	}
	lo, hi := floatAttr(el, "min", 0), floatAttr(el, "max", 1)
	f.itemWidth(cs)
	defer f.pop(f.pushFrameColors(cs))
	if f.b.SliderFloat(el.AttrOr("label", ""), &v, lo, hi) {
		f.ctx.Store.Set(id, state.NumberValue(v))
		f.fire(el, "onChange")
	}
}

func (f *frameRenderer) checkbox(el *markup.Element, cs style.Computed, sib state.Sibling) {
	id := f.ctx.StableID(el, sib)
	ws := f.ctx.Store.GetOrCreate(id, state.BoolValue(el.AttrOr("checked", "") == "true"))
	checked := ws.Bool()
	defer f.pop(f.pushFrameColors(cs))
	if f.b.Checkbox(el.AttrOr("label", ""), &checked) {
		f.ctx.Store.Set(id, state.BoolValue(checked))
		f.fire(el, "onChange")
	}
}

// --- Helpers ---------------------------------------------------------------

// fire calls the event handler named by an element's attribute, if any.
func (f *frameRenderer) fire(el *markup.Element, attr string) {
	name, ok := el.Attr(attr)
	if !ok || name == "" {
		return
	}
	h, ok := f.ctx.Handler(name)
	if !ok {
		tracer().Infof("render: no event handler found for %s=%q", attr, name)
		return
	}
	h()
}

func (f *frameRenderer) itemWidth(cs style.Computed) {
	if w, ok := cs.Number("width"); ok {
		f.b.SetNextItemWidth(w)
	}
}

type colorSlot struct {
	property string
	col      StyleColor
}

// pushColors pushes a style color for every color property set in cs and
// returns the number of colors pushed.
func (f *frameRenderer) pushColors(cs style.Computed, slots ...colorSlot) int {
	n := 0
	for _, s := range slots {
		if c, ok := cs.Color(s.property); ok {
			f.b.PushStyleColor(s.col, c)
			n++
		}
	}
	return n
}

func (f *frameRenderer) pushFrameColors(cs style.Computed) int {
	return f.pushColors(cs,
		colorSlot{"widget-background-color", ColFrameBg},
		colorSlot{"widget-background-color-hover", ColFrameBgHovered},
		colorSlot{"widget-background-color-active", ColFrameBgActive},
		colorSlot{"color", ColText},
	)
}

func (f *frameRenderer) pop(n int) {
	if n > 0 {
		f.b.PopStyleColor(n)
	}
}

func floatAttr(el *markup.Element, key string, dflt float64) float64 {
	v, ok := el.Attr(key)
	if !ok {
		return dflt
	}
	x, ok := style.ParseNumber(v)
	if !ok {
		tracer().Infof("render: attribute %s=%q of <%s> is not a number", key, v, el.Tag)
		return dflt
	}
	return x
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

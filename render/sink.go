package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/trema/style"
)

// FrameSink receives a textual mirror of every backend call, together with
// frame boundaries. Sinks are purely observational.
type FrameSink interface {
	StartFrame(frame uint64)
	Log(line string)
	EndFrame(frame uint64)
}

// NewTextSink creates a FrameSink writing one line per call to w.
func NewTextSink(w io.Writer) FrameSink {
	return &textSink{w: w}
}

type textSink struct {
	w io.Writer
}

func (s *textSink) StartFrame(frame uint64) {
	fmt.Fprintf(s.w, "// --- frame %d ---\n", frame)
}

func (s *textSink) Log(line string) {
	fmt.Fprintln(s.w, line)
}

func (s *textSink) EndFrame(frame uint64) {
	fmt.Fprintf(s.w, "// --- end of frame %d ---\n", frame)
}

// --- Logging backend -------------------------------------------------------

// loggingBackend decorates a Backend and mirrors every call to a sink.
type loggingBackend struct {
	b    Backend
	sink FrameSink
}

var _ Backend = loggingBackend{}

func (l loggingBackend) logf(format string, args ...interface{}) {
	l.sink.Log(fmt.Sprintf(format, args...))
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func vec4(c style.Color) string {
	f := c.Floats()
	return fmt.Sprintf("[%.3f, %.3f, %.3f, %.3f]", f[0], f[1], f[2], f[3])
}

func (l loggingBackend) Begin(title string) bool {
	l.logf("ImGui.Begin(%q);", title)
	return l.b.Begin(title)
}

func (l loggingBackend) End() {
	l.logf("ImGui.End();")
	l.b.End()
}

func (l loggingBackend) Text(text string) {
	l.logf("ImGui.Text(%q);", text)
	l.b.Text(text)
}

func (l loggingBackend) TextColored(c style.Color, text string) {
	l.logf("ImGui.TextColored(%s, %q);", vec4(c), text)
	l.b.TextColored(c, text)
}

func (l loggingBackend) Button(label string) bool {
	l.logf("ImGui.Button(%q);", label)
	return l.b.Button(label)
}

func (l loggingBackend) InputTextWithHint(label, hint string, buf *string, size int) bool {
	l.logf("ImGui.InputTextWithHint(%q, %q, %q, %d);", label, hint, *buf, size)
	return l.b.InputTextWithHint(label, hint, buf, size)
}

func (l loggingBackend) SliderFloat(label string, v *float64, min, max float64) bool {
	l.logf("ImGui.SliderFloat(%q, %s, %s, %s);", label, num(*v), num(min), num(max))
	return l.b.SliderFloat(label, v, min, max)
}

func (l loggingBackend) Checkbox(label string, checked *bool) bool {
	l.logf("ImGui.Checkbox(%q, %t);", label, *checked)
	return l.b.Checkbox(label, checked)
}

func (l loggingBackend) SameLine(offset, spacing float64) {
	l.logf("ImGui.SameLine(%s, %s);", num(offset), num(spacing))
	l.b.SameLine(offset, spacing)
}

func (l loggingBackend) Spacing() {
	l.logf("ImGui.Spacing();")
	l.b.Spacing()
}

func (l loggingBackend) Separator() {
	l.logf("ImGui.Separator();")
	l.b.Separator()
}

func (l loggingBackend) PushStyleColor(col StyleColor, c style.Color) {
	l.logf("ImGui.PushStyleColor(ImGuiCol.%s, %s);", col, vec4(c))
	l.b.PushStyleColor(col, c)
}

func (l loggingBackend) PopStyleColor(n int) {
	l.logf("ImGui.PopStyleColor(%d);", n)
	l.b.PopStyleColor(n)
}

func (l loggingBackend) SetNextItemWidth(w float64) {
	l.logf("ImGui.SetNextItemWidth(%s);", num(w))
	l.b.SetNextItemWidth(w)
}

func (l loggingBackend) SetNextWindowSize(w, h float64) {
	l.logf("ImGui.SetNextWindowSize([%s, %s], ImGui.Cond.Once);", num(w), num(h))
	l.b.SetNextWindowSize(w, h)
}

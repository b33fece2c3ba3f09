package render

import "github.com/npillmayer/trema/style"

// Backend is the interface to an immediate-mode GUI library. Widgets
// reporting user interaction return true if the user interacted with them
// during the current frame; pointer arguments are read and updated in place.
type Backend interface {
	Begin(title string) bool
	End()
	Text(text string)
	TextColored(c style.Color, text string)
	Button(label string) bool
	InputTextWithHint(label, hint string, buf *string, size int) bool
	SliderFloat(label string, v *float64, min, max float64) bool
	Checkbox(label string, checked *bool) bool
	SameLine(offset, spacing float64)
	Spacing()
	Separator()
	PushStyleColor(col StyleColor, c style.Color)
	PopStyleColor(n int)
	SetNextItemWidth(w float64)
	SetNextWindowSize(w, h float64)
}

// StyleColor identifies a themable color slot of the backend.
type StyleColor uint8

// Color slots used by the widgets.
const (
	ColText StyleColor = iota
	ColWindowBg
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColButton
	ColButtonHovered
	ColButtonActive
)

var styleColorNames = [...]string{
	"Text", "WindowBg", "FrameBg", "FrameBgHovered", "FrameBgActive",
	"Button", "ButtonHovered", "ButtonActive",
}

func (col StyleColor) String() string {
	if int(col) < len(styleColorNames) {
		return styleColorNames[col]
	}
	return "StyleColor(?)"
}

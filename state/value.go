package state

import "strconv"

// Value is the value of a widget. The set of value types is closed:
// StringValue, NumberValue and BoolValue.
type Value interface {
	isValue()
	String() string
}

// StringValue is the value of text input widgets.
type StringValue string

// NumberValue is the value of sliders.
type NumberValue float64

// BoolValue is the value of checkboxes.
type BoolValue bool

func (StringValue) isValue() {}
func (NumberValue) isValue() {}
func (BoolValue) isValue() {}

func (v StringValue) String() string { return string(v) }
func (v NumberValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }

// WidgetState is the persistent state of a single widget.
type WidgetState struct {
	ID        string
	Value     Value
	LastFrame uint64 // frame of last access
}

// Str returns the value as a string. Non-string values are formatted.
func (ws *WidgetState) Str() string {
	if ws == nil || ws.Value == nil {
		return ""
	}
	return ws.Value.String()
}

// Number returns the value as a number. Strings are parsed, booleans map
// to 0 and 1.
func (ws *WidgetState) Number() float64 {
	if ws == nil {
		return 0
	}
	switch v := ws.Value.(type) {
	case NumberValue:
		return float64(v)
	case BoolValue:
		if v {
			return 1
		}
	case StringValue:
		x, _ := strconv.ParseFloat(string(v), 64)
		return x
	}
	return 0
}

// Bool returns the value as a boolean. Numbers are true if non-zero,
// strings if parseable as true.
func (ws *WidgetState) Bool() bool {
	if ws == nil {
		return false
	}
	switch v := ws.Value.(type) {
	case BoolValue:
		return bool(v)
	case NumberValue:
		return v != 0
	case StringValue:
		b, _ := strconv.ParseBool(string(v))
		return b
	}
	return false
}

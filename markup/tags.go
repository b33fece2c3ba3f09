package markup

// DefaultRootTag is the tag every markup document has to start with, unless
// configured otherwise.
const DefaultRootTag = "App"

// Kind is the widget kind of an element, derived from its tag.
type Kind uint8

// The closed set of widget kinds. KindUnknown is used for every tag not
// listed here.
const (
	KindUnknown Kind = iota
	KindApp
	KindHead
	KindBody
	KindWindow
	KindText
	KindButton
	KindInputText
	KindSliderFloat
	KindCheckbox
	KindSameLine
	KindSpacing
	KindSeparator
)

var kindNames = [...]string{
	KindUnknown:     "Unknown",
	KindApp:         "App",
	KindHead:        "Head",
	KindBody:        "Body",
	KindWindow:      "Window",
	KindText:        "Text",
	KindButton:      "Button",
	KindInputText:   "InputText",
	KindSliderFloat: "SliderFloat",
	KindCheckbox:    "Checkbox",
	KindSameLine:    "SameLine",
	KindSpacing:     "Spacing",
	KindSeparator:   "Separator",
}

var kindFromTag = map[string]Kind{}

func init() {
	for k, name := range kindNames {
		if Kind(k) != KindUnknown {
			kindFromTag[name] = Kind(k)
		}
	}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// KindOf returns the widget kind for a tag name. Tags are case-sensitive.
func KindOf(tag string) Kind {
	return kindFromTag[tag] // zero value is KindUnknown
}

// IsKnownTag is a predicate for tags with a dedicated widget kind.
func IsKnownTag(tag string) bool {
	return KindOf(tag) != KindUnknown
}

// KnownTags returns the tag names of all known widget kinds.
func KnownTags() []string {
	tags := make([]string, 0, len(kindNames)-1)
	for k := KindApp; int(k) < len(kindNames); k++ {
		tags = append(tags, kindNames[k])
	}
	return tags
}

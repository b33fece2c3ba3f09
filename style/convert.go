package style

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// Color is a packed 32-bit color in RGBA byte order, i.e. 0xRRGGBBAA.
type Color uint32

// Unresolved is the sentinel for color values which could not be parsed:
// fully opaque white.
const Unresolved Color = 0xFFFFFFFF

// RGBA creates a color from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c) }

// NRGBA converts a color to a non-premultiplied color of package image/color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Floats returns the components of a color scaled to [0…1], as expected by
// most immediate-mode GUI libraries.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R()) / 255, float32(c.G()) / 255,
		float32(c.B()) / 255, float32(c.A()) / 255,
	}
}

// Shade returns a color with delta added to each of R, G and B, saturating
// at 0 and 255. Alpha is left unchanged.
func (c Color) Shade(delta int) Color {
	sh := func(x uint8) uint8 {
		v := int(x) + delta
		if v < 0 {
			return 0
		} else if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return RGBA(sh(c.R()), sh(c.G()), sh(c.B()), c.A())
}

func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// palette is a small set of named colors.
//
// TODO use standard palette, e.g. golang.org/x/image/colornames
var palette = map[string]Color{
	"black":       RGBA(0, 0, 0, 0xff),
	"white":       RGBA(0xff, 0xff, 0xff, 0xff),
	"red":         RGBA(0xff, 0, 0, 0xff),
	"green":       RGBA(0, 0xff, 0, 0xff),
	"blue":        RGBA(0, 0, 0xff, 0xff),
	"gray":        RGBA(0x80, 0x80, 0x80, 0xff),
	"grey":        RGBA(0x80, 0x80, 0x80, 0xff),
	"transparent": RGBA(0, 0, 0, 0),
}

var rgbFunc = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

// ParseColor parses a color value. Recognized forms are
//
//    0xRRGGBBAA   0xRRGGBB
//    #RGB         #RRGGBB     #RRGGBBAA
//    rgb(r, g, b)
//    black, white, red, green, blue, gray, grey, transparent
//
// Forms without an alpha component are fully opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return parseHex(s[2:], false)
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:], true)
	case strings.HasPrefix(s, "rgb("):
		m := rgbFunc.FindStringSubmatch(s)
		if m == nil {
			return 0, fmt.Errorf("malformed rgb() color: %q", s)
		}
		var comp [3]uint8
		for i := 0; i < 3; i++ {
			n, _ := strconv.Atoi(m[i+1])
			if n > 255 {
				n = 255
			}
			comp[i] = uint8(n)
		}
		return RGBA(comp[0], comp[1], comp[2], 0xff), nil
	}
	if c, ok := palette[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("not a color: %q", s)
}

func parseHex(digits string, short bool) (Color, error) {
	if short && len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0], digits[1], digits[1], digits[2], digits[2],
		})
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed hex color: %q", digits)
	}
	switch len(digits) {
	case 6:
		return Color(n<<8 | 0xff), nil
	case 8:
		return Color(n), nil
	}
	return 0, fmt.Errorf("hex color must have 3, 6 or 8 digits: %q", digits)
}

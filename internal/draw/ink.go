package draw

import (
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Block characters.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

const sgrReset = "\033[0m"

// Ink is an xterm-256 colour index plus one. The zero value is an unset pixel.
type Ink uint16

// NoInk marks an empty pixel.
const NoInk Ink = 0

// staleInk never matches a drawn pixel; Touch uses it to force a repaint.
const staleInk Ink = 0xffff

// Fixed inks used by the scene.
var (
	InkWhite  = InkFromHex("#ffffff")
	InkRed    = InkFromHex("#ff3b3b")
	InkOrange = InkFromHex("#ff9f1c")
	InkYellow = InkFromHex("#ffe66d")
	InkCyan   = InkFromHex("#4dd9ff")
	InkBlue   = InkFromHex("#3a86ff")
	InkGreen  = InkFromHex("#38e07b")
	InkPurple = InkFromHex("#9d4edd")
	InkGrey   = InkFromHex("#6c757d")
)

var inkCache sync.Map // string -> Ink

// InkFromHex maps a "#rrggbb" colour to the nearest xterm-256 ink. Unknown
// strings fall back to white.
func InkFromHex(hex string) Ink {
	if v, ok := inkCache.Load(hex); ok {
		return v.(Ink)
	}
	ink := Ink(16) // white, 15 + 1
	switch c := termenv.ANSI256.Color(hex).(type) {
	case termenv.ANSI256Color:
		ink = Ink(c) + 1
	case termenv.ANSIColor:
		ink = Ink(c) + 1
	}
	inkCache.Store(hex, ink)
	return ink
}

func (i Ink) writeFg(b *strings.Builder) {
	b.WriteString("\033[38;5;")
	b.WriteString(strconv.Itoa(int(i) - 1))
	b.WriteByte('m')
}

func (i Ink) writeBg(b *strings.Builder) {
	b.WriteString("\033[48;5;")
	b.WriteString(strconv.Itoa(int(i) - 1))
	b.WriteByte('m')
}

// Package colorize assigns stable display colours to nicks.
//
// Colours are a deterministic function of first-seen order, not of the nick
// string: the first speaker gets palette slot 0, the next new speaker slot 1,
// and so on, wrapping around once the palette is exhausted. This keeps
// adjacent speakers visually distinct regardless of what they are called.
package colorize

import "fmt"

// PaletteSize is the number of distinct colours before slots are reused.
const PaletteSize = 30

// palette holds PaletteSize "#rrggbb" values, interpolated between six RGB
// base hues from saturated to pale so neighbouring slots stay apart.
var palette = buildPalette()

func buildPalette() []string {
	const (
		rgbmin = 240
		rgbmax = 125
		a      = 0.95
		b      = 0.5
	)
	bases := [][3]float64{
		{a, b, b},
		{b, a, b},
		{b, b, a},
		{a, a, b},
		{a, b, a},
		{b, a, a},
	}
	colors := make([]string, PaletteSize)
	for i := range colors {
		base := bases[i%len(bases)]
		m := rgbmin + (rgbmax-rgbmin)*float64(PaletteSize-i)/PaletteSize
		colors[i] = fmt.Sprintf("#%02x%02x%02x",
			int(base[0]*m), int(base[1]*m), int(base[2]*m))
	}
	return colors
}

// Assignment maps nicks to palette colours for a single rendering run.
// It is not safe for concurrent use; each conversion owns its own.
type Assignment struct {
	colors map[string]string
	next   int
}

func New() *Assignment {
	return &Assignment{colors: make(map[string]string)}
}

// ColorFor returns the "#rrggbb" colour for nick, assigning the next free
// palette slot on first sight. The same nick always gets the same colour
// within one Assignment.
func (a *Assignment) ColorFor(nick string) string {
	if c, ok := a.colors[nick]; ok {
		return c
	}
	c := palette[a.next%PaletteSize]
	a.next++
	a.colors[nick] = c
	return c
}

// Rename carries the old nick's colour forward to the new identity so a
// /nick change does not recolour the speaker. If the old nick was never
// seen, a slot is assigned to it first and shared by both names.
func (a *Assignment) Rename(oldNick, newNick string) {
	a.colors[newNick] = a.ColorFor(oldNick)
}

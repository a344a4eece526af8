package keys

import (
	"strings"
	"unicode"
)

// PianoKey describes one playable note. Values are never mutated after
// the catalog is built.
type PianoKey struct {
	Note      string  // e.g. "C#4"
	Frequency float64 // Hz
	IsBlack   bool
	Trigger   rune // computer key binding, 0 if unbound
}

// Label returns the note name without its octave ("C#4" -> "C#").
func (k PianoKey) Label() string {
	return strings.TrimRightFunc(k.Note, unicode.IsDigit)
}

// Bound reports whether the key has a computer key binding.
func (k PianoKey) Bound() bool {
	return k.Trigger != 0
}

// C4 up to D#5, bound to the home row (naturals) and the q-row (accidentals)
// so the layout sits under the fingers like a real keyboard.
var catalog = []PianoKey{
	{Note: "C4", Frequency: 261.63, Trigger: 'a'},
	{Note: "C#4", Frequency: 277.18, IsBlack: true, Trigger: 'w'},
	{Note: "D4", Frequency: 293.66, Trigger: 's'},
	{Note: "D#4", Frequency: 311.13, IsBlack: true, Trigger: 'e'},
	{Note: "E4", Frequency: 329.63, Trigger: 'd'},
	{Note: "F4", Frequency: 349.23, Trigger: 'f'},
	{Note: "F#4", Frequency: 369.99, IsBlack: true, Trigger: 't'},
	{Note: "G4", Frequency: 392.00, Trigger: 'g'},
	{Note: "G#4", Frequency: 415.30, IsBlack: true, Trigger: 'y'},
	{Note: "A4", Frequency: 440.00, Trigger: 'h'},
	{Note: "A#4", Frequency: 466.16, IsBlack: true, Trigger: 'u'},
	{Note: "B4", Frequency: 493.88, Trigger: 'j'},
	{Note: "C5", Frequency: 523.25, Trigger: 'k'},
	{Note: "C#5", Frequency: 554.37, IsBlack: true, Trigger: 'o'},
	{Note: "D5", Frequency: 587.33, Trigger: 'l'},
	{Note: "D#5", Frequency: 622.25, IsBlack: true, Trigger: 'p'},
}

// Catalog is an ordered, read-only list of keys.
type Catalog []PianoKey

// Default returns the 16 key catalog starting at C4.
func Default() Catalog {
	out := make(Catalog, len(catalog))
	copy(out, catalog)
	return out
}

// All returns a copy of every key in catalog order.
func (c Catalog) All() []PianoKey {
	out := make([]PianoKey, len(c))
	copy(out, c)
	return out
}

// White returns the natural keys in catalog order.
func (c Catalog) White() []PianoKey {
	var out []PianoKey
	for _, k := range c {
		if !k.IsBlack {
			out = append(out, k)
		}
	}
	return out
}

// Black returns the accidental keys in catalog order.
func (c Catalog) Black() []PianoKey {
	var out []PianoKey
	for _, k := range c {
		if k.IsBlack {
			out = append(out, k)
		}
	}
	return out
}

// ByTrigger finds the key bound to r, ignoring case.
func (c Catalog) ByTrigger(r rune) (PianoKey, bool) {
	if r == 0 {
		return PianoKey{}, false
	}
	r = unicode.ToLower(r)
	for _, k := range c {
		if k.Bound() && unicode.ToLower(k.Trigger) == r {
			return k, true
		}
	}
	return PianoKey{}, false
}

// ByNote finds the key with the given note identifier.
func (c Catalog) ByNote(note string) (PianoKey, bool) {
	for _, k := range c {
		if k.Note == note {
			return k, true
		}
	}
	return PianoKey{}, false
}

// WhitesBefore counts the white keys that precede index i.
func (c Catalog) WhitesBefore(i int) int {
	n := 0
	for j := 0; j < i && j < len(c); j++ {
		if !c[j].IsBlack {
			n++
		}
	}
	return n
}

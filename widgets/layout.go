package widgets

import "go-piano/keys"

// Geometry sizes the keyboard. Units are pixels or terminal cells depending
// on the target.
type Geometry struct {
	WhiteWidth  int
	WhiteHeight int
	BlackWidth  int
	BlackHeight int
	Gap         int // space between neighbouring white keys
}

// PixelGeometry is the reference layout: 60px keys with 1px margin each side.
var PixelGeometry = Geometry{
	WhiteWidth:  60,
	WhiteHeight: 200,
	BlackWidth:  40,
	BlackHeight: 120,
	Gap:         2,
}

// CellGeometry is the terminal layout.
var CellGeometry = Geometry{
	WhiteWidth:  5,
	WhiteHeight: 7,
	BlackWidth:  3,
	BlackHeight: 4,
	Gap:         1,
}

// Pitch is the horizontal distance between the left edges of two white keys.
func (g Geometry) Pitch() int {
	return g.WhiteWidth + g.Gap
}

// BlackOffset returns the left edge of a black key preceded by whites white keys.
func (g Geometry) BlackOffset(whites int) int {
	return whites*g.Pitch() - g.WhiteWidth/2
}

// KeyRect is a key placed on the keyboard.
type KeyRect struct {
	Key  keys.PianoKey
	X, Y int
	W, H int
}

// Contains reports whether (x, y) falls inside the rect.
func (r KeyRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places every key. White keys come first in catalog order, then
// black keys, so later rects are drawn on top.
func Layout(catalog keys.Catalog, g Geometry) []KeyRect {
	rects := make([]KeyRect, 0, len(catalog))
	whites := 0
	for _, k := range catalog {
		if k.IsBlack {
			continue
		}
		rects = append(rects, KeyRect{Key: k, X: whites * g.Pitch(), W: g.WhiteWidth, H: g.WhiteHeight})
		whites++
	}
	for i, k := range catalog {
		if !k.IsBlack {
			continue
		}
		rects = append(rects, KeyRect{
			Key: k,
			X:   g.BlackOffset(catalog.WhitesBefore(i)),
			W:   g.BlackWidth,
			H:   g.BlackHeight,
		})
	}
	return rects
}

// Width is the extent of the laid out keyboard.
func Width(rects []KeyRect) int {
	w := 0
	for _, r := range rects {
		if r.X+r.W > w {
			w = r.X + r.W
		}
	}
	return w
}

// HitTest returns the topmost key under (x, y).
func HitTest(rects []KeyRect, x, y int) (keys.PianoKey, bool) {
	for i := len(rects) - 1; i >= 0; i-- {
		if rects[i].Contains(x, y) {
			return rects[i].Key, true
		}
	}
	return keys.PianoKey{}, false
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-piano/keys"
	"go-piano/theme"
)

// Role is what a single cell of the keyboard shows.
type Role int

const (
	RoleGap Role = iota
	RoleWhite
	RoleWhiteHover
	RoleWhiteActive
	RoleBlack
	RoleBlackHover
	RoleBlackActive
)

// Cell is one terminal cell of the rendered keyboard.
type Cell struct {
	Rune rune
	Role Role
}

// Keyboard draws the catalog as a piano. It holds no state of its own:
// what it shows is decided by the active set passed to View.
type Keyboard struct {
	Theme  *theme.Theme
	Geom   Geometry
	Labels bool

	rects []KeyRect
	width int
}

func NewKeyboard(catalog keys.Catalog, th *theme.Theme) *Keyboard {
	rects := Layout(catalog, CellGeometry)
	return &Keyboard{
		Theme:  th,
		Geom:   CellGeometry,
		Labels: true,
		rects:  rects,
		width:  Width(rects),
	}
}

// Width and Height are the size of View in cells.
func (k *Keyboard) Width() int  { return k.width }
func (k *Keyboard) Height() int { return k.Geom.WhiteHeight }

// HitTest maps a cell relative to the keyboard's top-left corner to a key.
func (k *Keyboard) HitTest(x, y int) (keys.PianoKey, bool) {
	return HitTest(k.rects, x, y)
}

// Cells renders the keyboard into a grid of cells.
func (k *Keyboard) Cells(active map[string]bool, hover string) [][]Cell {
	grid := make([][]Cell, k.Geom.WhiteHeight)
	for y := range grid {
		grid[y] = make([]Cell, k.width)
		for x := range grid[y] {
			grid[y][x] = Cell{Rune: k.Theme.Symbols.Gap, Role: RoleGap}
		}
	}

	for _, r := range k.rects {
		role := keyRole(r.Key, active[r.Key.Note], r.Key.Note == hover)
		for y := r.Y; y < r.Y+r.H && y < len(grid); y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if x < 0 || x >= k.width {
					continue
				}
				grid[y][x] = Cell{Rune: k.Theme.Symbols.Fill, Role: role}
			}
		}
		if k.Labels {
			k.label(grid, r)
		}
	}
	return grid
}

// label writes the binding near the bottom of the key and, for white keys,
// the note name on the last row.
func (k *Keyboard) label(grid [][]Cell, r KeyRect) {
	bottom := r.Y + r.H - 1
	if r.Key.IsBlack {
		if r.Key.Bound() {
			putText(grid, r, bottom, string(r.Key.Trigger))
		}
		return
	}
	putText(grid, r, bottom, r.Key.Label())
	if r.Key.Bound() {
		putText(grid, r, bottom-1, string(r.Key.Trigger))
	}
}

func putText(grid [][]Cell, r KeyRect, y int, text string) {
	if y < 0 || y >= len(grid) {
		return
	}
	runes := []rune(text)
	x := r.X + (r.W-len(runes))/2
	for i, ch := range runes {
		cx := x + i
		if cx < r.X || cx >= r.X+r.W || cx < 0 || cx >= len(grid[y]) {
			continue
		}
		grid[y][cx].Rune = ch
	}
}

func keyRole(k keys.PianoKey, active, hover bool) Role {
	switch {
	case k.IsBlack && active:
		return RoleBlackActive
	case k.IsBlack && hover:
		return RoleBlackHover
	case k.IsBlack:
		return RoleBlack
	case active:
		return RoleWhiteActive
	case hover:
		return RoleWhiteHover
	default:
		return RoleWhite
	}
}

// style maps a role to colors. Hover is a tint only.
func (k *Keyboard) style(role Role) lipgloss.Style {
	t := k.Theme
	s := lipgloss.NewStyle()
	switch role {
	case RoleWhite:
		return s.Background(t.WhiteKey()).Foreground(t.Muted())
	case RoleWhiteHover:
		return s.Background(t.Color(0.9)).Foreground(t.Muted())
	case RoleWhiteActive:
		return s.Background(t.Active()).Foreground(t.BG()).Bold(true)
	case RoleBlack:
		return s.Background(t.BlackKey()).Foreground(t.FG())
	case RoleBlackHover:
		return s.Background(t.Muted()).Foreground(t.WhiteKey())
	case RoleBlackActive:
		return s.Background(t.Accent()).Foreground(t.WhiteKey()).Bold(true)
	default:
		return s.Background(t.BG())
	}
}

// View renders the keyboard for the given active set and hovered note.
func (k *Keyboard) View(active map[string]bool, hover string) string {
	grid := k.Cells(active, hover)
	lines := make([]string, len(grid))
	for y, row := range grid {
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Role == row[start].Role {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteRune(c.Rune)
			}
			line.WriteString(k.style(row[start].Role).Render(run.String()))
			start = x
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

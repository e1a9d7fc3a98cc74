// Package decor places themed emoji markers on the cells of a finished maze.
package decor

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	// RandomTheme picks one of the named themes at random.
	RandomTheme = "random"
	// DefaultTheme is used for unknown theme names.
	DefaultTheme = "treasure"
	// DefaultDensity is the fraction of cells decorated when none is given.
	DefaultDensity = 0.15
	// Highlight is the background tag given to about half of the decorated cells.
	Highlight = "rgba(255, 255, 200, 0.3)"
)

var ErrInvalidDensity = errors.New("density must be between 0 and 1")

// Themes maps each theme name to its emoji set.
var Themes = map[string][]string{
	"treasure": {"💎", "👑", "🏆", "💰", "🗝️"},
	"nature":   {"🌸", "🌺", "🌻", "🌹", "🍄"},
	"food":     {"🍕", "🍔", "🍰", "🍪", "🍩"},
	"animals":  {"🐱", "🐶", "🐸", "🦊", "🐼"},
	"space":    {"🌟", "⭐", "🌙", "☀️", "🪐"},
	"spooky":   {"👻", "🎃", "🦇", "🕷️", "💀"},
}

// ThemeNames lists the themes in display order.
var ThemeNames = []string{"treasure", "nature", "food", "animals", "space", "spooky"}

// Rand is the random source used for decoration. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ResolveTheme turns a requested theme into a concrete one: RandomTheme draws a theme,
// unknown names fall back to DefaultTheme.
func ResolveTheme(name string, r Rand) string {
	if name == RandomTheme {
		return ThemeNames[r.Intn(len(ThemeNames))]
	}
	if _, ok := Themes[name]; !ok {
		return DefaultTheme
	}
	return name
}

// ValidateDensity checks that density is a fraction in [0, 1].
func ValidateDensity(density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return nil
}

// Decorate marks floor(cells*density) uniformly drawn cells with an emoji of the theme.
// A cell may be drawn more than once; the last draw wins. Walls are never touched.
// It returns the number of placements made.
func Decorate(g *maze.Grid, theme string, density float64, r Rand) (int, error) {
	if err := ValidateDensity(density); err != nil {
		return 0, err
	}

	emojis, ok := Themes[theme]
	if !ok {
		emojis = Themes[DefaultTheme]
	}

	count := int(math.Floor(float64(g.Cols()*g.Rows()) * density))
	for i := 0; i < count; i++ {
		x := r.Intn(g.Cols())
		y := r.Intn(g.Rows())
		cell := g.Cell(x, y)

		cell.Emoji = emojis[r.Intn(len(emojis))]
		if r.Float64() > 0.5 {
			cell.Background = Highlight
		}
	}

	return count, nil
}

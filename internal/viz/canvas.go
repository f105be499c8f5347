package viz

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleEmpty = 0x2800
	brailleFull  = 0x28FF
)

// Canvas is a braille dot grid with one composited color per cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color

	base  colorful.Color
	stamp [][]int
	pass  int
}

func NewCanvas(w, h int, base colorful.Color) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]colorful.Color, h),
		stamp:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
		c.stamp[i] = make([]int, w)
	}
	c.Clear(base)
	return c
}

// DotWidth and DotHeight are the canvas size in sub-pixel dots.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

func (c *Canvas) Base() colorful.Color { return c.base }

// Set sets a dot at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to empty over the given base color.
func (c *Canvas) Clear(base colorful.Color) {
	c.base = base
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleEmpty
			c.Colors[i][j] = base
			c.stamp[i][j] = 0
		}
	}
	c.pass = 0
}

// FillDisc sets every dot whose center lies within r of (cx, cy) and
// composites col at alpha over each touched cell once.
func (c *Canvas) FillDisc(cx, cy, r float64, col colorful.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	c.pass++

	x0 := max(0, int(math.Floor(cx-r)))
	x1 := min(c.DotWidth()-1, int(math.Ceil(cx+r)))
	y0 := max(0, int(math.Floor(cy-r)))
	y1 := min(c.DotHeight()-1, int(math.Ceil(cy+r)))
	alpha = math.Min(alpha, 1)

	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			c.Set(x, y)
			row, cell := y/4, x/2
			if c.stamp[row][cell] != c.pass {
				c.stamp[row][cell] = c.pass
				c.Colors[row][cell] = c.Colors[row][cell].BlendRgb(col, alpha)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

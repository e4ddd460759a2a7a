package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// cell is one terminal character: two stacked sub-pixels.
type cell struct {
	top, bottom Ink
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. It scales from logical coordinates to terminal
// sub-pixels and only re-emits cells that changed since the last Render.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int
	pixels         []Ink // [y*termWidth + x]
	prev           []cell
	redraw         bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that maps logicalWidth x logicalHeight onto
// a termWidth x termHeight terminal area.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Ink, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.redraw = true
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// ForceRedraw makes the next Render emit every cell, e.g. after the screen
// was cleared.
func (c *Canvas) ForceRedraw() {
	c.redraw = true
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.redraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// Pixel returns the ink at sub-pixel (x, y), or NoInk outside the canvas.
func (c *Canvas) Pixel(x, y int) Ink {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return NoInk
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets the pixel under a logical point.
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), ink)
}

// DrawLine draws a line with Bresenham's algorithm. Coordinates are logical.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, ink)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, ink Ink, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, ink)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], ink)
	}
}

// fillPolygon is a scanline fill in pixel space.
func (c *Canvas) fillPolygon(points []Point, ink Ink) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1, p2 := scaled[i], scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y, ink)
			}
		}
	}
}

// Render writes changed cells to w as half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			idx := row*c.termWidth + col
			if !c.redraw && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			c.writeCell(cur)
		}
	}
	c.redraw = false

	if c.renderBuf.Len() == 0 {
		return
	}
	c.renderBuf.WriteString(sgrReset)
	io.WriteString(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeCell(cur cell) {
	b := &c.renderBuf
	switch {
	case cur.top == NoInk && cur.bottom == NoInk:
		b.WriteByte(' ')
	case cur.top == cur.bottom:
		cur.top.writeFg(b)
		b.WriteRune(BlockFull)
	case cur.bottom == NoInk:
		cur.top.writeFg(b)
		b.WriteRune(BlockUpperHalf)
	case cur.top == NoInk:
		cur.bottom.writeFg(b)
		b.WriteRune(BlockLowerHalf)
	default:
		cur.top.writeFg(b)
		cur.bottom.writeBg(b)
		b.WriteRune(BlockUpperHalf)
		b.WriteString(sgrReset)
	}
}

// Touch marks a block of cells as stale so the next Render repaints them.
// Call it for any text written over the canvas. col and row are 1-based.
func (c *Canvas) Touch(col, row, width, height int) {
	for r := max(row-1, 0); r < min(row-1+height, c.termHeight); r++ {
		for x := max(col-1, 0); x < min(col-1+width, c.termWidth); x++ {
			c.prev[r*c.termWidth+x] = cell{top: staleInk}
		}
	}
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts a logical point to a 1-based (col, row) inside
// the canvas, without the offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

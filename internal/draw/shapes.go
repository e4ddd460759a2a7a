package draw

import "math"

// FillRect fills a logical box centered on (x, y). Anything visible covers at
// least one sub-pixel.
func (c *Canvas) FillRect(x, y, w, h float64, ink Ink) {
	x0 := int(math.Floor((x - w/2) * c.scaleX))
	x1 := int(math.Ceil((x + w/2) * c.scaleX))
	y0 := int(math.Floor((y - h/2) * c.scaleY))
	y1 := int(math.Ceil((y + h/2) * c.scaleY))
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, ink)
		}
	}
}

// Triangle draws a filled isosceles triangle in the w x h box around (x, y).
// up points the apex at the top edge.
func (c *Canvas) Triangle(x, y, w, h float64, up bool, ink Ink) {
	apex, base := y-h/2, y+h/2
	if !up {
		apex, base = base, apex
	}
	c.DrawPolygon([]Point{{x, apex}, {x + w/2, base}, {x - w/2, base}}, ink, true)
}

// Diamond draws a filled rhombus in the w x h box around (x, y).
func (c *Canvas) Diamond(x, y, w, h float64, ink Ink) {
	c.DrawPolygon([]Point{{x, y - h/2}, {x + w/2, y}, {x, y + h/2}, {x - w/2, y}}, ink, true)
}

// Ring draws a circle outline of logical radius r.
func (c *Canvas) Ring(x, y, r float64, ink Ink) {
	if r <= 0 {
		return
	}
	// Enough segments that neighbouring points land on adjacent pixels.
	segments := max(12, int(2*math.Pi*r*math.Max(c.scaleX, c.scaleY)))
	prev := Point{x + r, y}
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		next := Point{x + r*math.Cos(a), y + r*math.Sin(a)}
		c.DrawLine(prev, next, ink)
		prev = next
	}
}

// Disc draws a filled circle of logical radius r.
func (c *Canvas) Disc(x, y, r float64, ink Ink) {
	y0 := int(math.Floor((y - r) * c.scaleY))
	y1 := int(math.Ceil((y + r) * c.scaleY))
	for py := y0; py <= y1; py++ {
		ly := (float64(py)+0.5)/c.scaleY - y
		if ly*ly > r*r {
			continue
		}
		half := math.Sqrt(r*r - ly*ly)
		for px := int(math.Floor((x - half) * c.scaleX)); px <= int(math.Ceil((x+half)*c.scaleX)); px++ {
			c.setPixel(px, py, ink)
		}
	}
	c.SetFloat(x, y, ink)
}

// HLine draws a horizontal line across the logical width at y.
func (c *Canvas) HLine(y float64, ink Ink) {
	c.DrawLine(Point{0, y}, Point{c.logicalWidth, y}, ink)
}

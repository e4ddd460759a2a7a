package gfx

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/object"
)

var (
	colBackground = color.RGBA{0x05, 0x06, 0x14, 0xff}
	colWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colRed        = color.RGBA{0xff, 0x3b, 0x3b, 0xff}
	colOrange     = color.RGBA{0xff, 0x9f, 0x1c, 0xff}
	colYellow     = color.RGBA{0xff, 0xe6, 0x6d, 0xff}
	colCyan       = color.RGBA{0x4d, 0xd9, 0xff, 0xff}
	colBlue       = color.RGBA{0x3a, 0x86, 0xff, 0xff}
	colGreen      = color.RGBA{0x38, 0xe0, 0x7b, 0xff}
	colPurple     = color.RGBA{0x9d, 0x4e, 0xdd, 0xff}
	colGrey       = color.RGBA{0x6c, 0x75, 0x7d, 0xff}
)

// hexColor parses "#rrggbb", falling back to white.
func hexColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colWhite
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	f := func(v uint8) uint8 { return uint8(float64(v) * a) }
	return color.RGBA{f(c.R), f(c.G), f(c.B), f(c.A)}
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	switch g.screen {
	case screenShipSelect:
		g.drawShipSelect(screen)
		return
	case screenPlaying, screenGameOver:
		g.drawScene(screen, &g.snap)
		g.drawHUD(screen, &g.snap.HUD)
	}
	if g.screen == screenGameOver {
		h := &g.snap.HUD
		drawCentered(screen, 260, "GAME OVER")
		drawCentered(screen, 290, fmt.Sprintf("Score %d   Level %d   High score %d", h.Score, h.Level, h.HighScore))
		drawCentered(screen, 320, "Press ENTER or click to play again, ESC to quit")
	}
}

func (g *Game) drawScene(dst *ebiten.Image, s *game.Snapshot) {
	g.drawEffects(dst, s)

	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		c := colRed
		if p.Type == object.PowerUpDefense {
			c = colBlue
		}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), object.PowerUpSize/2, c, true)
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		c := hexColor(e.Color)
		switch e.Kind {
		case object.EnemyDrone:
			g.fillPolygon(dst, c, diamond(e.X, e.Y, e.W, e.H)...)
		case object.EnemyBonus:
			fillRect(dst, e.X, e.Y, e.W*0.8, e.H*0.6, c)
		default:
			g.fillPolygon(dst, c, triangle(e.X, e.Y, e.W, e.H, false)...)
		}
	}

	if b := s.Boss; b != nil {
		c := colPurple
		switch {
		case b.Stunned(s.Now):
			c = colGrey
		case b.LowHealth():
			c = colRed
		}
		fillRect(dst, b.X, b.Y, b.W, b.H*0.6, c)
		g.fillPolygon(dst, c, triangle(b.X, b.Y+b.H*0.3, b.W*0.5, b.H*0.4, false)...)
	}

	shots := func(list []object.Projectile, c color.RGBA) {
		for i := range list {
			fillRect(dst, list[i].X, list[i].Y, list[i].W, list[i].H, c)
		}
	}
	shots(s.EnemyBullets, colRed)
	shots(s.BossBullets, colOrange)
	shots(s.BossMissiles, colPurple)
	for i := range s.PlayerBullets {
		p := &s.PlayerBullets[i]
		c := colYellow
		if p.Special != object.SpecialNone {
			c = colCyan
		}
		fillRect(dst, p.X, p.Y, p.W, p.H, c)
	}
	for i := range s.Missiles {
		m := &s.Missiles[i]
		fillRect(dst, m.X, m.Y, m.W, m.H, colWhite)
	}
	for i := range s.Drones {
		d := &s.Drones[i]
		g.fillPolygon(dst, colGreen, diamond(d.X, d.Y, object.SupportDroneSize, object.SupportDroneSize)...)
	}

	if s.HUD.Phase != game.PhaseGameOver {
		p := &s.Player
		g.fillPolygon(dst, hexColor(ability.ShipOrDefault(p.Ship).Color), triangle(p.X, p.Y, p.W, p.H, true)...)
	}

	for i := range s.Explosions {
		e := &s.Explosions[i]
		fade := 1 - e.Progress()
		r := float32(e.Size * (0.3 + 0.7*e.Progress()))
		switch e.Variant {
		case object.ExplosionLightning:
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), r, 2, withAlpha(colCyan, fade), true)
		case object.ExplosionDisintegrate:
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), r, 2, withAlpha(colPurple, fade), true)
		case object.ExplosionSpark:
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), r/2, 1, withAlpha(colWhite, fade), true)
		default:
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), r, withAlpha(colOrange, fade), true)
		}
	}
}

func (g *Game) drawEffects(dst *ebiten.Image, s *game.Snapshot) {
	fx := &s.Effects
	p := &s.Player
	if fx.Beam {
		hw := ability.BeamSettings.HalfWidth
		top := p.Y - p.H/2
		fillRect(dst, fx.BeamX, top/2, hw*2, top, withAlpha(colCyan, 0.6))
	}
	if fx.Wave {
		t := ability.WavefrontSettings.Thickness
		fillRect(dst, s.Arena.Width/2, fx.WaveY+t/2, s.Arena.Width, t, withAlpha(colPurple, 0.5))
		vector.StrokeLine(dst, 0, float32(fx.WaveY), float32(s.Arena.Width), float32(fx.WaveY), 2, colWhite, true)
	}
	if fx.Nova {
		r := ability.NovaSettings.ClearRadius * fx.NovaProgress
		vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(r), 3, withAlpha(colWhite, 1-fx.NovaProgress), true)
	}
	if fx.Shield {
		vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(fx.ShieldRadius), 2, colBlue, true)
	}
	if fx.Charge > 0 {
		vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(p.W*(1-fx.Charge)+8), 2, colYellow, true)
	}
}

func (g *Game) drawHUD(dst *ebiten.Image, h *game.HUD) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %d  HI %d  LV %d  HP %s %d  ATK %d DEF %d  CR %d",
		h.Score, h.HighScore, h.Level, draw.Meter(h.Health, 10), h.HealthPoints,
		h.AttackStacks, h.DefenseStacks, h.Credits), 8, 4)

	slots := make([]string, 0, len(h.Abilities))
	for i, a := range h.Abilities {
		if a.Name != "" {
			slots = append(slots, fmt.Sprintf("[%d] %s %s", i+1, a.Name, a.Label))
		}
	}
	ebitenutil.DebugPrintAt(dst, strings.Join(slots, "   "), 8, game.ArenaHeight-18)

	if h.BossVisible {
		c := colOrange
		if h.BossLow {
			c = colRed
		}
		w := float32(game.ArenaWidth) / 2
		x := float32(game.ArenaWidth)/2 - w/2
		vector.StrokeRect(dst, x, 22, w, 8, 1, colWhite, false)
		vector.DrawFilledRect(dst, x, 22, w*float32(h.BossHealth), 8, c, false)
	}

	y := 180
	if h.Overlay.Visible {
		text := h.Overlay.Text
		if h.Overlay.Check {
			text += "  OK"
		}
		drawCentered(dst, y, text)
		y += 30
	}
	if h.BonusRound {
		drawCentered(dst, y, fmt.Sprintf("BONUS ROUND %.0fs", h.BonusLeft/1000))
		y += 20
	}
	for _, b := range h.Banners {
		drawCentered(dst, y, b.Text)
		y += 20
	}
}

func (g *Game) drawShipSelect(dst *ebiten.Image) {
	drawCentered(dst, 140, "S T A R F A L L")
	drawCentered(dst, 170, "Choose your ship")
	for i, s := range ability.Ships {
		y := 210 + i*36
		if i == g.shipIndex {
			vector.StrokeRect(dst, 220, float32(y-8), 360, 30, 1, hexColor(s.Color), false)
		}
		g.fillPolygon(dst, hexColor(s.Color), triangle(250, float64(y+7), 16, 22, true)...)
		names := make([]string, 0, len(s.Abilities))
		for _, k := range s.Abilities {
			names = append(names, ability.GetConfig(k).Name)
		}
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%-9s %s", s.Name, strings.Join(names, " / ")), 270, y)
	}
	drawCentered(dst, 450, "Arrows to choose, ENTER or SPACE to launch")
	drawCentered(dst, 470, "WASD move, SPACE fire, 1-3 abilities, hold mouse to steer")
}

// drawCentered prints text centered horizontally. The debug font is 6px wide.
func drawCentered(dst *ebiten.Image, y int, text string) {
	ebitenutil.DebugPrintAt(dst, text, (game.ArenaWidth-len(text)*6)/2, y)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x-w/2), float32(y-h/2), float32(w), float32(h), c, false)
}

func triangle(x, y, w, h float64, up bool) []draw.Point {
	apex, base := y-h/2, y+h/2
	if !up {
		apex, base = base, apex
	}
	return []draw.Point{{X: x, Y: apex}, {X: x + w/2, Y: base}, {X: x - w/2, Y: base}}
}

func diamond(x, y, w, h float64) []draw.Point {
	return []draw.Point{{X: x, Y: y - h/2}, {X: x + w/2, Y: y}, {X: x, Y: y + h/2}, {X: x - w/2, Y: y}}
}

// fillPolygon fills a convex or concave outline with a flat colour.
func (g *Game) fillPolygon(dst *ebiten.Image, c color.RGBA, points ...draw.Point) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if g.whiteImg == nil {
		g.whiteImg = ebiten.NewImage(1, 1)
		g.whiteImg.Fill(color.White)
	}
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, g.whiteImg, &ebiten.DrawTrianglesOptions{})
}

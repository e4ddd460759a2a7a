package draw

import (
	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/object"
)

// Scene draws a snapshot onto a canvas whose logical size is the arena.
// Later layers overwrite earlier ones: effects, pickups, hostiles, shots,
// the player, then explosions.
func Scene(c *Canvas, s *game.Snapshot) {
	drawEffects(c, s)

	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		ink := InkRed
		if p.Type == object.PowerUpDefense {
			ink = InkBlue
		}
		c.Disc(p.X, p.Y, object.PowerUpSize/2, ink)
	}

	for i := range s.Enemies {
		drawEnemy(c, &s.Enemies[i])
	}
	if b := s.Boss; b != nil {
		drawBoss(c, b, s.Now)
	}

	shots := func(list []object.Projectile, ink Ink) {
		for i := range list {
			p := &list[i]
			c.FillRect(p.X, p.Y, p.W, p.H, ink)
		}
	}
	shots(s.EnemyBullets, InkRed)
	shots(s.BossBullets, InkOrange)
	shots(s.BossMissiles, InkPurple)
	for i := range s.PlayerBullets {
		p := &s.PlayerBullets[i]
		ink := InkYellow
		if p.Special != object.SpecialNone {
			ink = InkCyan
		}
		c.FillRect(p.X, p.Y, p.W, p.H, ink)
	}
	for i := range s.Missiles {
		m := &s.Missiles[i]
		c.FillRect(m.X, m.Y, m.W, m.H, InkWhite)
	}

	for i := range s.Drones {
		d := &s.Drones[i]
		c.Diamond(d.X, d.Y, object.SupportDroneSize, object.SupportDroneSize, InkGreen)
	}

	if s.HUD.Phase != game.PhaseGameOver {
		p := &s.Player
		c.Triangle(p.X, p.Y, p.W, p.H, true, InkFromHex(ability.ShipOrDefault(p.Ship).Color))
	}

	for i := range s.Explosions {
		drawExplosion(c, &s.Explosions[i])
	}
}

func drawEnemy(c *Canvas, e *object.Enemy) {
	switch e.Kind {
	case object.EnemyDrone:
		c.Diamond(e.X, e.Y, e.W, e.H, InkFromHex(e.Color))
	case object.EnemyBonus:
		c.FillRect(e.X, e.Y, e.W*0.8, e.H*0.6, InkFromHex(e.Color))
	default:
		c.Triangle(e.X, e.Y, e.W, e.H, false, InkFromHex(e.Color))
	}
}

func drawBoss(c *Canvas, b *object.Boss, now float64) {
	ink := InkPurple
	switch {
	case b.Stunned(now):
		ink = InkGrey
	case b.LowHealth():
		ink = InkRed
	}
	c.FillRect(b.X, b.Y, b.W, b.H*0.6, ink)
	c.Triangle(b.X, b.Y+b.H*0.3, b.W*0.5, b.H*0.4, false, ink)
}

func drawExplosion(c *Canvas, e *object.Explosion) {
	r := e.Size * (0.3 + 0.7*e.Progress())
	switch e.Variant {
	case object.ExplosionLightning:
		c.Ring(e.X, e.Y, r, InkCyan)
	case object.ExplosionDisintegrate:
		c.Ring(e.X, e.Y, r, InkPurple)
	case object.ExplosionSpark:
		c.Ring(e.X, e.Y, r*0.5, InkWhite)
	default:
		c.Ring(e.X, e.Y, r, InkOrange)
		if e.Progress() < 0.5 {
			c.Disc(e.X, e.Y, r*0.4, InkYellow)
		}
	}
}

func drawEffects(c *Canvas, s *game.Snapshot) {
	fx := &s.Effects
	if fx.Beam {
		hw := ability.BeamSettings.HalfWidth
		h := s.Player.Y - s.Player.H/2
		c.FillRect(fx.BeamX, h/2, hw*2, h, InkCyan)
	}
	if fx.Wave {
		t := ability.WavefrontSettings.Thickness
		c.FillRect(s.Arena.Width/2, fx.WaveY+t/2, s.Arena.Width, t, InkPurple)
		c.HLine(fx.WaveY, InkWhite)
	}
	if fx.Nova {
		c.Ring(s.Player.X, s.Player.Y, ability.NovaSettings.ClearRadius*fx.NovaProgress, InkWhite)
	}
	if fx.Shield {
		c.Ring(s.Player.X, s.Player.Y, fx.ShieldRadius, InkBlue)
	}
	if fx.Charge > 0 {
		c.Ring(s.Player.X, s.Player.Y, s.Player.W*(1-fx.Charge)+8, InkYellow)
	}
}

package game

import (
	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/object"
)

// AbilityView is the HUD view of one ability slot.
type AbilityView struct {
	Kind     ability.Kind
	Name     string
	State    ability.State
	Label    string  // "Active", "Ready" or seconds left
	Progress float64 // Fraction of the active duration spent
}

// HUD is everything a status bar needs.
type HUD struct {
	Phase         Phase
	Ship          string
	Score         int
	HighScore     int
	Level         int
	Credits       int
	Kills         int
	Health        float64 // 0..1
	HealthPoints  int
	BossVisible   bool
	BossHealth    float64 // 0..1
	BossLow       bool
	Abilities     [3]AbilityView
	Combo         bool
	ComboLeft     float64 // ms
	BonusRound    bool
	BonusLeft     float64 // ms
	AttackStacks  int
	DefenseStacks int
	NextBossScore int
	Banners       []Banner
	Overlay       Overlay
}

// Effects describes ability visuals that are not entities.
type Effects struct {
	Beam         bool
	BeamX        float64
	Nova         bool
	NovaProgress float64
	Shield       bool
	ShieldRadius float64
	Wave         bool
	WaveY        float64
	Charge       float64 // Overcharge build-up 0..1; 0 when idle
	Combo        bool
}

// Snapshot is a read-only deep copy of the world for renderers.
type Snapshot struct {
	Now           float64
	Arena         object.Arena
	Player        object.Player
	PlayerBullets []object.Projectile
	EnemyBullets  []object.Projectile
	BossBullets   []object.Projectile
	BossMissiles  []object.Projectile
	Missiles      []object.Missile // Target is cleared in the copy
	Enemies       []object.Enemy
	Boss          *object.Boss
	Drones        []object.Drone
	PowerUps      []object.PowerUp
	Explosions    []object.Explosion
	Effects       Effects
	HUD           HUD
}

// Snapshot copies the current world. The result shares no memory with it.
func (g *Game) Snapshot() Snapshot {
	w := g.w
	s := Snapshot{
		Now:           w.Now,
		Arena:         w.Arena,
		Player:        *w.Player,
		PlayerBullets: copyValues(w.PlayerBullets),
		EnemyBullets:  copyValues(w.EnemyBullets),
		BossBullets:   copyValues(w.BossBullets),
		BossMissiles:  copyValues(w.BossMissiles),
		Missiles:      copyValues(w.Missiles),
		Enemies:       copyValues(w.Enemies),
		Drones:        copyValues(w.Drones),
		PowerUps:      copyValues(w.PowerUps),
		Explosions:    copyValues(w.Explosions),
		Effects:       g.effects(),
		HUD:           g.hud(),
	}
	for i := range s.Missiles {
		s.Missiles[i].Target = nil
	}
	if w.Boss != nil {
		b := *w.Boss
		s.Boss = &b
	}
	return s
}

func copyValues[T any](list []*T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		out[i] = *v
	}
	return out
}

func (g *Game) effects() Effects {
	w := g.w
	e := Effects{Combo: w.Combo.Active}
	for _, a := range w.Abilities {
		if a == nil || !a.Active {
			continue
		}
		switch a.Kind {
		case ability.Beam:
			e.Beam, e.BeamX = true, w.Player.X
		case ability.Nova:
			e.Nova, e.NovaProgress = true, a.Elapsed()
		case ability.Aegis:
			e.Shield, e.ShieldRadius = true, ability.AegisSettings.Radius
		case ability.Wavefront:
			e.Wave, e.WaveY = true, w.WaveY
		case ability.Overcharge:
			e.Charge = a.Elapsed()
		}
	}
	return e
}

func (g *Game) hud() HUD {
	w := g.w
	h := HUD{
		Phase:         w.Progress.Phase,
		Ship:          w.Ship.Name,
		Score:         w.Ledger.Score,
		HighScore:     w.Ledger.HighScore,
		Level:         w.Ledger.Level,
		Credits:       w.Ledger.Credits,
		Kills:         w.Ledger.Kills,
		Health:        w.Player.HealthFraction(),
		HealthPoints:  w.Player.Health,
		Combo:         w.Combo.Active,
		ComboLeft:     w.Combo.Timer,
		BonusRound:    w.BonusRound(),
		AttackStacks:  w.Ledger.AttackStacks,
		DefenseStacks: w.Ledger.DefenseStacks,
		NextBossScore: w.NextBossScore,
		Banners:       append([]Banner(nil), w.Banners...),
		Overlay:       g.overlay(),
	}
	if h.BonusRound {
		h.BonusLeft = w.Progress.Timer
	}
	if b := w.Boss; b != nil {
		h.BossVisible = true
		h.BossHealth = b.HealthFraction()
		h.BossLow = b.LowHealth()
	}
	for i, a := range w.Abilities {
		if a == nil {
			continue
		}
		h.Abilities[i] = AbilityView{
			Kind:     a.Kind,
			Name:     a.Name,
			State:    a.State(w.Now),
			Label:    a.Label(w.Now),
			Progress: a.Elapsed(),
		}
	}
	return h
}

package game

// Cue is a sound or presentation cue raised by the simulation. Front-ends
// drain cues once per frame and react however they like.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CueHit
	CueDeflect
	CuePowerUp
	CueAbility
	CueBossSpawn
	CueBossDefeat
	CueCombo
	CueBonusRound
	CueLevelUp
	CueGameOver
)

var cueNames = [...]string{
	CueShoot:      "shoot",
	CueExplosion:  "explosion",
	CueHit:        "hit",
	CueDeflect:    "deflect",
	CuePowerUp:    "powerup",
	CueAbility:    "ability",
	CueBossSpawn:  "boss-spawn",
	CueBossDefeat: "boss-defeat",
	CueCombo:      "combo",
	CueBonusRound: "bonus-round",
	CueLevelUp:    "level-up",
	CueGameOver:   "game-over",
}

// String returns the cue name.
func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

func (g *Game) emit(c Cue) {
	g.events = append(g.events, c)
}

// DrainEvents returns the cues raised since the last call and clears the queue.
func (g *Game) DrainEvents() []Cue {
	out := g.events
	g.events = nil
	return out
}

package game

import (
	"fmt"

	"github.com/tomz197/starfall/internal/physics"
)

// registerKill records a kill for the combo chain and starts the combo when
// the window holds enough kills.
func (g *Game) registerKill() {
	w := g.w
	c := &w.Combo
	c.Kills = append(c.Kills, w.Now)

	kept := c.Kills[:0]
	for _, ts := range c.Kills {
		if w.Now-ts <= ComboWindow {
			kept = append(kept, ts)
		}
	}
	c.Kills = kept

	if !c.Active && len(c.Kills) >= ComboKills {
		c.Active = true
		c.Timer = ComboDuration
		g.banner(BannerCombo, fmt.Sprintf("Combo x%d!", ComboKills), ComboBannerMS)
		g.emit(CueCombo)
	}
}

// tickCombo ends the combo exactly when its timer runs out.
func (g *Game) tickCombo(dt float64) {
	c := &g.w.Combo
	if !c.Active {
		return
	}
	c.Timer -= dt
	if c.Timer <= 0 {
		c.Timer = 0
		c.Active = false
	}
}

func (g *Game) banner(kind BannerKind, text string, ms float64) {
	g.w.Banners = append(g.w.Banners, Banner{Kind: kind, Text: text, Timer: ms})
}

func (g *Game) tickBanners(dt float64) {
	w := g.w
	kept := w.Banners[:0]
	for _, b := range w.Banners {
		b.Timer -= dt
		if b.Timer > 0 {
			kept = append(kept, b)
		}
	}
	w.Banners = kept
}

// scheduleRoundChange queues what follows a boss kill: the bonus round on
// every third level, otherwise the level transition.
func (g *Game) scheduleRoundChange() {
	w := g.w
	next := PhaseTransition
	if w.Ledger.Level%BonusRoundLevelDivisor == 0 && !w.BonusRound() {
		next = PhaseBonusRound
	}
	w.Progress = Progress{Phase: PhaseRoundDelay, Timer: RoundDelay, Next: next}
}

// advanceProgression moves the phase machine forward by dt ms.
func (g *Game) advanceProgression(dt float64) {
	pr := &g.w.Progress
	switch pr.Phase {
	case PhaseRoundDelay:
		pr.Timer -= dt
		if pr.Timer > 0 {
			return
		}
		if pr.Next == PhaseBonusRound {
			g.startBonusRound()
		} else {
			g.startTransition()
		}

	case PhaseBonusRound:
		pr.Timer -= dt
		if pr.Timer <= 0 {
			g.log.Debug("bonus round over", "score", g.w.Ledger.Score)
			*pr = Progress{Phase: PhaseRoundDelay, Timer: RoundDelay, Next: PhaseTransition}
		}

	case PhaseTransition:
		g.advanceTransition(dt)
	}
}

func (g *Game) startBonusRound() {
	g.w.Progress = Progress{Phase: PhaseBonusRound, Timer: BonusRoundTime}
	g.banner(BannerBonus, "BONUS ROUND", BannerTime)
	g.emit(CueBonusRound)
	g.log.Debug("bonus round", "level", g.w.Ledger.Level)
}

func (g *Game) startTransition() {
	w := g.w
	w.Progress = Progress{
		Phase:  PhaseTransition,
		Stage:  StageMoveToCenter,
		Timer:  MoveToCenterMS,
		StartX: w.Player.X,
		StartY: w.Player.Y,
	}
	w.Player.Shooting = false
	w.EnemyColor = g.randomColor()
	g.log.Debug("level transition", "from", w.Ledger.Level)
}

// stageLength is how long each transition stage lasts, in ms.
var stageLength = map[Stage]float64{
	StageMoveToCenter: MoveToCenterMS,
	StageMoveUp:       MoveUpMS,
	StageShowLevel:    ShowLevelMS,
	StageShowCheck:    ShowCheckMS,
	StageFadeOut:      FadeOutMS,
	StageShowNext:     ShowNextMS,
	StageFadeNext:     FadeNextMS,
}

// advanceTransition animates the ship and steps through the stages.
func (g *Game) advanceTransition(dt float64) {
	w := g.w
	pr := &w.Progress
	p := w.Player
	pr.Timer -= dt

	t := physics.Clamp(1-pr.Timer/stageLength[pr.Stage], 0, 1)
	switch pr.Stage {
	case StageMoveToCenter:
		p.X = physics.Lerp(pr.StartX, w.Arena.CenterX(), t)
	case StageMoveUp:
		p.Y = physics.Lerp(pr.StartY, -p.H, t)
	}
	if pr.Timer > 0 {
		return
	}

	switch pr.Stage {
	case StageMoveToCenter:
		p.X = w.Arena.CenterX()
		g.enterStage(StageMoveUp)
	case StageMoveUp:
		p.Y = -p.H
		g.enterStage(StageShowLevel)
	case StageShowLevel:
		g.enterStage(StageShowCheck)
	case StageShowCheck:
		g.enterStage(StageFadeOut)
	case StageFadeOut:
		w.Ledger.Level++
		g.emit(CueLevelUp)
		g.enterStage(StageShowNext)
	case StageShowNext:
		g.enterStage(StageFadeNext)
	case StageFadeNext:
		p.ResetPosition(w.Arena)
		p.Heal()
		w.Ledger.Health = p.Health
		w.Progress = Progress{Phase: PhasePlaying}
		g.startLevel()
	}
}

func (g *Game) enterStage(s Stage) {
	pr := &g.w.Progress
	pr.Stage = s
	pr.Timer = stageLength[s]
}

// startLevel clears the arena for a fresh level.
func (g *Game) startLevel() {
	w := g.w
	g.banner(BannerLevelStart, levelStartText(w.Ledger.Level), BannerTime)
	w.clearTransient()
	for _, a := range w.Abilities {
		if a != nil {
			a.Finish()
			a.Released = false
		}
	}
	w.NextBossScore = nextBossScore(w.Ledger.Score)
	g.log.Debug("level start", "level", w.Ledger.Level, "next_boss", w.NextBossScore)
}

func levelStartText(level int) string {
	return fmt.Sprintf("LEVEL %d START", level)
}

// Overlay is the level-change card shown during the transition.
type Overlay struct {
	Visible bool
	Text    string
	Check   bool    // Show the completion checkmark
	Alpha   float64 // 0..1
}

func (g *Game) overlay() Overlay {
	w := g.w
	pr := w.Progress
	if pr.Phase != PhaseTransition {
		return Overlay{}
	}
	text := fmt.Sprintf("Level %d", w.Ledger.Level)
	fade := physics.Clamp(pr.Timer/stageLength[pr.Stage], 0, 1)
	switch pr.Stage {
	case StageShowLevel, StageShowNext:
		return Overlay{Visible: true, Text: text, Alpha: 1}
	case StageShowCheck:
		return Overlay{Visible: true, Text: text, Check: true, Alpha: 1}
	case StageFadeOut:
		return Overlay{Visible: true, Text: text, Check: true, Alpha: fade}
	case StageFadeNext:
		return Overlay{Visible: true, Text: text, Alpha: fade}
	}
	return Overlay{}
}

package gfx

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/store"
)

type cueRecorder struct{ cues []game.Cue }

func (r *cueRecorder) Play(c game.Cue) { r.cues = append(r.cues, c) }

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0x4f, 0xc3, 0xf7, 0xff}, hexColor("#4fc3f7"))
	assert.Equal(t, colWhite, hexColor("bogus"))
}

func TestKeysIntent(t *testing.T) {
	in := keys{left: true, up: true, fire: true}.intent()
	assert.InDelta(t, -0.7071, in.MoveX, 1e-3)
	assert.InDelta(t, -0.7071, in.MoveY, 1e-3)
	assert.True(t, in.Fire)
	assert.False(t, in.HasTarget)

	in = keys{pointer: true, pointerX: 120, pointerY: 300}.intent()
	assert.True(t, in.HasTarget)
	assert.Equal(t, 120.0, in.TargetX)
	assert.Equal(t, 300.0, in.TargetY)
	assert.True(t, in.Fire)
}

func TestScreenFlow(t *testing.T) {
	sounds := &cueRecorder{}
	hs := &store.Memory{}
	g := New(Options{Logger: log.New(io.Discard), Store: hs, Seed: 5, Ship: "warden", Sounds: sounds})
	assert.Equal(t, "warden", ability.Ships[g.shipIndex].ID)

	require.NoError(t, g.update(keys{next: true}))
	assert.Equal(t, "tempest", ability.Ships[g.shipIndex].ID)

	require.NoError(t, g.update(keys{confirm: true}))
	require.Equal(t, screenPlaying, g.screen)
	assert.Equal(t, "tempest", g.snap.Player.Ship)

	x := g.snap.Player.X
	for i := 0; i < 15; i++ { // past the first shot cooldown
		require.NoError(t, g.update(keys{right: true, fire: true}))
	}
	assert.Greater(t, g.snap.Player.X, x)
	assert.Contains(t, sounds.cues, game.CueShoot)

	g.game.Restore(game.LedgerRecord{Score: 10, Health: 0, Level: 1})
	require.NoError(t, g.update(keys{}))
	assert.Equal(t, screenGameOver, g.screen)
	assert.Equal(t, 1, hs.Saves)

	require.NoError(t, g.update(keys{confirm: true}))
	assert.Equal(t, screenPlaying, g.screen)
	assert.Equal(t, 10, g.snap.HUD.HighScore)

	assert.ErrorIs(t, g.update(keys{quit: true}), ebiten.Termination)
}

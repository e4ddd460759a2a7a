package draw

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/input"
)

func countInk(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p != NoInk {
			n++
		}
	}
	return n
}

func TestInkFromHex(t *testing.T) {
	assert.Equal(t, Ink(232), InkFromHex("#ffffff"))
	assert.Equal(t, Ink(197), InkFromHex("#ff0000"))
	assert.Equal(t, Ink(16), InkFromHex("not a colour"))
	assert.NotEqual(t, NoInk, InkFromHex("#000000"))
}

func TestFillRectCoversAtLeastOnePixel(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(405, 305, 1, 1, InkRed)
	assert.Equal(t, 1, countInk(c))

	c.Clear()
	c.FillRect(400, 300, 100, 100, InkRed)
	assert.Equal(t, 10*10, countInk(c))
}

func TestPolygonFill(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{2, 2}, {12, 2}, {12, 12}, {2, 12}}, InkGreen, true)
	assert.Equal(t, InkGreen, c.Pixel(7, 7))
	assert.Equal(t, NoInk, c.Pixel(15, 15))
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(1, 0, InkRed)
	c.SetFloat(1, 1, InkBlue)

	var first bytes.Buffer
	c.Render(&first)
	assert.Contains(t, first.String(), string(BlockUpperHalf))
	assert.Contains(t, first.String(), "\033[48;5;")

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String())

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, "\033[1;2H \033[0m", third.String())

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	assert.Equal(t, 10*5, strings.Count(fourth.String(), "H"))
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestFrameOriginAndPackets(t *testing.T) {
	var out countingWriter
	f := NewFrame(&out, 2, 3)
	f.Text(1, 1, "ab\ncd")
	_, _ = f.Write([]byte(strings.Repeat("x", 3000)))
	require.NoError(t, f.Flush())

	assert.True(t, strings.HasPrefix(out.String(), "\033[4;3Hab\033[5;3Hcd"))
	assert.Len(t, out.String(), len("\033[4;3Hab\033[5;3Hcd")+3000)
	assert.Equal(t, 3, out.writes)

	require.NoError(t, f.Flush())
	assert.Equal(t, 3, out.writes, "empty frame writes nothing")

	f.SetOrigin(0, 0)
	f.Line(2, "hud")
	require.NoError(t, f.Flush())
	assert.True(t, strings.HasSuffix(out.String(), "\033[2;1H\033[2Khud"))
}

func TestMeter(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Meter(0.5, 10))
	assert.Equal(t, "░░░░", Meter(-1, 4))
	assert.Equal(t, "████", Meter(2, 4))
}

func TestSceneDrawsPlayingSnapshot(t *testing.T) {
	g := game.New(game.Options{Rng: rand.New(rand.NewSource(3)), Logger: log.New(io.Discard), Ship: "hive"})
	for i := 0; i < 240; i++ {
		g.Tick(game.TickMS, input.Intent{Fire: true})
	}
	s := g.Snapshot()

	c := NewScaledCanvas(120, 40, s.Arena.Width, s.Arena.Height)
	Scene(c, &s)
	col, row := c.LogicalToTerminal(s.Player.X, s.Player.Y)
	assert.NotEqual(t, NoInk, c.Pixel(col-1, (row-1)*2))
}

func TestHUDText(t *testing.T) {
	st := NewStyles(io.Discard)
	g := game.New(game.Options{Rng: rand.New(rand.NewSource(3)), Logger: log.New(io.Discard), Ship: "vanguard"})
	s := g.Snapshot()

	line := st.StatusLine(&s.HUD)
	assert.Contains(t, line, "SCORE")
	assert.Contains(t, line, "100")

	abilities := st.AbilityLine(&s.HUD)
	assert.Contains(t, abilities, "[1]")
	assert.Contains(t, abilities, "Ready")

	assert.Empty(t, st.BossLine(&s.HUD, 40))
	assert.Contains(t, strings.Join(st.BannerLines(&s.HUD), ""), "LEVEL 1 START")
}
func TestTouchRepaintsCells(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.Render(io.Discard)

	c.Touch(2, 1, 3, 1)
	c.Touch(9, 5, 10, 10) // clipped to the canvas
	var out bytes.Buffer
	c.Render(&out)
	assert.Equal(t, 3+2, strings.Count(out.String(), "H"))
	assert.Contains(t, out.String(), "\033[1;2H \033[1;3H \033[1;4H ")
}

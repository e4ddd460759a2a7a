package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/game"
)

// drawFrame renders one frame: canvas first, then text on top.
func (c *Client) drawFrame() error {
	// A full clear on screen changes keeps old UI from lingering.
	stateChanged := c.state.Screen != c.state.prevScreen
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.frame.Clear()
		c.canvas.ForceRedraw()
		c.state.prevScreen = c.state.Screen
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	var snap *game.Snapshot
	if c.session != nil && c.state.Screen != ScreenShipSelect {
		snap = c.session.Snapshot()
	}
	if snap != nil && c.state.Screen != ScreenShutdown {
		draw.Scene(c.canvas, snap)
	}
	c.canvas.Render(c.frame)

	c.drawUI(snap)
	return c.frame.Flush()
}

func (c *Client) drawUI(snap *game.Snapshot) {
	if snap != nil {
		c.drawHUD(&snap.HUD)
	}

	switch {
	case c.state.Screen == ScreenShutdown:
		c.drawPanel(c.shutdownLines()...)
	case c.state.isInactive:
		c.drawPanel(c.styles.Warn.Render("ARE YOU STILL THERE?"), "", "Press any key to keep playing")
	case c.state.Screen == ScreenShipSelect:
		c.drawPanel(c.shipSelectLines()...)
	case c.state.Screen == ScreenGameOver && snap != nil:
		c.drawPanel(c.gameOverLines(&snap.HUD)...)
	case snap != nil:
		c.drawBanners(&snap.HUD)
	}
}

// drawHUD writes the status and ability rows around the canvas.
func (c *Client) drawHUD(h *game.HUD) {
	st := c.styles
	c.frame.Line(1, " "+st.StatusLine(h))
	c.frame.Line(c.renderHeight, " "+st.AbilityLine(h))

	if boss := st.BossLine(h, c.renderWidth/2); boss != "" {
		col := (c.renderWidth-draw.Width(boss))/2 + 1
		c.writeOverCanvas(col, 1, boss)
	}
}

// drawBanners stacks banners and the level card in the upper third.
func (c *Client) drawBanners(h *game.HUD) {
	row := c.canvas.TerminalHeight() / 3
	if card := c.styles.OverlayCard(h.Overlay); card != "" {
		c.writeCentered(row, card)
		row += 2
	}
	for _, line := range c.styles.BannerLines(h) {
		c.writeCentered(row, line)
		row++
	}
}

func (c *Client) drawPanel(lines ...string) {
	box := c.styles.PanelBox(lines...)
	row := max((c.canvas.TerminalHeight()-draw.Height(box))/2, 1)
	c.writeCentered(row, box)
}

// writeCentered writes a block centered horizontally at canvas row row.
func (c *Client) writeCentered(row int, s string) {
	col := max((c.renderWidth-draw.Width(s))/2, 0) + 1
	c.writeOverCanvas(col, row, s)
}

// writeOverCanvas writes text at canvas-relative (col, row) and marks the
// cells underneath for repaint on the next frame.
func (c *Client) writeOverCanvas(col, row int, s string) {
	c.frame.Text(col, row+1, s)
	c.canvas.Touch(col, row, draw.Width(s), draw.Height(s))
}

func (c *Client) shipSelectLines() []string {
	st := c.styles
	lines := []string{st.Title.Render("S T A R F A L L"), "", "Choose your ship", ""}
	for i, s := range ability.Ships {
		names := make([]string, 0, len(s.Abilities))
		for _, k := range s.Abilities {
			names = append(names, ability.GetConfig(k).Name)
		}
		entry := fmt.Sprintf("%-10s %s", s.Name, strings.Join(names, " / "))
		if i == c.state.ShipIndex {
			lines = append(lines, st.Value.Render("> "+entry+" <"))
		} else {
			lines = append(lines, st.Dim.Render("  "+entry+"  "))
		}
	}
	return append(lines, "",
		"A/D or arrows to choose, ENTER or SPACE to launch",
		st.Label.Render("WASD/arrows move, SPACE fires, 1-3 abilities, Q quits"),
	)
}

func (c *Client) gameOverLines(h *game.HUD) []string {
	st := c.styles
	lines := []string{
		st.Bad.Render("GAME OVER"),
		"",
		fmt.Sprintf("Score %d   Level %d   Kills %d", h.Score, h.Level, h.Kills),
	}
	if h.Score > 0 && h.Score >= h.HighScore {
		lines = append(lines, st.Good.Render("NEW HIGH SCORE"))
	} else {
		lines = append(lines, st.Label.Render(fmt.Sprintf("High score %d", h.HighScore)))
	}
	return append(lines, "", "Press ENTER to play again, Q to quit")
}

func (c *Client) shutdownLines() []string {
	st := c.styles
	remaining := int(c.state.shutdownTimer) + 1
	return []string{
		st.Bad.Render("SERVER SHUTTING DOWN"),
		"",
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %d seconds...", remaining),
		st.Label.Render("Press Q to disconnect now"),
	}
}

package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/game"
)

// Styles are the lipgloss styles for text overlays. Each output stream gets
// its own set so SSH sessions don't share colour detection.
type Styles struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Panel   lipgloss.Style
	Banner  lipgloss.Style
	Combo   lipgloss.Style
	Bonus   lipgloss.Style
	Overlay lipgloss.Style
}

// NewStyles builds styles for w. The raw-mode streams the game writes to are
// not detected as terminals, so the colour profile is forced to 256 colours.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return Styles{
		Label:   r.NewStyle().Foreground(lipgloss.Color("#8d99ae")),
		Value:   r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Good:    r.NewStyle().Foreground(lipgloss.Color("#38e07b")),
		Warn:    r.NewStyle().Foreground(lipgloss.Color("#ffe66d")),
		Bad:     r.NewStyle().Foreground(lipgloss.Color("#ff3b3b")).Bold(true),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("#6c757d")),
		Title:   r.NewStyle().Foreground(lipgloss.Color("#4dd9ff")).Bold(true),
		Panel:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3a86ff")).Padding(1, 3).Align(lipgloss.Center),
		Banner:  r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Combo:   r.NewStyle().Foreground(lipgloss.Color("#ff9f1c")).Bold(true),
		Bonus:   r.NewStyle().Foreground(lipgloss.Color("#ffe66d")).Bold(true),
		Overlay: r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(0, 2),
	}
}

// Meter renders a fixed-width bar filled to frac.
func Meter(frac float64, width int) string {
	frac = math.Max(0, math.Min(1, frac))
	full := int(math.Round(frac * float64(width)))
	return strings.Repeat("█", full) + strings.Repeat("░", width-full)
}

// StatusLine is the top HUD row: score, level, health and boosts.
func (st Styles) StatusLine(h *game.HUD) string {
	health := st.Good
	switch {
	case h.Health < 0.3:
		health = st.Bad
	case h.Health < 0.6:
		health = st.Warn
	}

	parts := []string{
		st.Label.Render("SCORE ") + st.Value.Render(fmt.Sprint(h.Score)),
		st.Label.Render("HI ") + st.Value.Render(fmt.Sprint(h.HighScore)),
		st.Label.Render("LV ") + st.Value.Render(fmt.Sprint(h.Level)),
		st.Label.Render("HP ") + health.Render(Meter(h.Health, 10)) + " " + st.Value.Render(fmt.Sprint(h.HealthPoints)),
		st.Label.Render("ATK ") + st.Value.Render(fmt.Sprint(h.AttackStacks)) +
			st.Label.Render(" DEF ") + st.Value.Render(fmt.Sprint(h.DefenseStacks)),
		st.Label.Render("CR ") + st.Value.Render(fmt.Sprint(h.Credits)),
	}
	return strings.Join(parts, "  ")
}

// AbilityLine is the bottom HUD row with the three ability slots.
func (st Styles) AbilityLine(h *game.HUD) string {
	parts := make([]string, 0, len(h.Abilities))
	for i, a := range h.Abilities {
		if a.Name == "" {
			continue
		}
		label := st.Dim
		switch a.State {
		case ability.Active:
			label = st.Title
		case ability.Ready:
			label = st.Good
		}
		parts = append(parts, st.Label.Render(fmt.Sprintf("[%d] ", i+1))+st.Value.Render(a.Name)+" "+label.Render(a.Label))
	}
	return strings.Join(parts, "   ")
}

// BossLine renders the boss health bar, or "" without a boss.
func (st Styles) BossLine(h *game.HUD, width int) string {
	if !h.BossVisible {
		return ""
	}
	bar := st.Warn
	if h.BossLow {
		bar = st.Bad
	}
	return st.Label.Render("BOSS ") + bar.Render(Meter(h.BossHealth, max(width-5, 1)))
}

// BannerLines renders the active banners, newest last.
func (st Styles) BannerLines(h *game.HUD) []string {
	lines := make([]string, 0, len(h.Banners)+1)
	if h.BonusRound {
		lines = append(lines, st.Bonus.Render(fmt.Sprintf("BONUS ROUND %.0fs", math.Ceil(h.BonusLeft/1000))))
	}
	for _, b := range h.Banners {
		style := st.Banner
		switch b.Kind {
		case game.BannerCombo:
			style = st.Combo
		case game.BannerBonus:
			style = st.Bonus
		}
		lines = append(lines, style.Render(b.Text))
	}
	return lines
}

// OverlayCard renders the level-change card. Low alpha dims the text.
func (st Styles) OverlayCard(o game.Overlay) string {
	if !o.Visible {
		return ""
	}
	text := o.Text
	if o.Check {
		text += "  ✓"
	}
	if o.Alpha < 0.5 {
		return st.Dim.Render(text)
	}
	return st.Overlay.Render(text)
}

// PanelBox renders a bordered, centered menu box.
func (st Styles) PanelBox(lines ...string) string {
	return st.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Width returns the printable width of a styled string.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Height returns the number of lines in a styled block.
func Height(s string) int {
	return lipgloss.Height(s)
}

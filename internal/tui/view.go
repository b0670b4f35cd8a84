package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/walletbar/internal/wallet"
)

const menuGlyph = "≡"

func (a *App) render() string {
	st := a.conn.State()

	left := titleStyle.Render(a.cfg.Title)
	if a.narrow() {
		left = lipgloss.JoinHorizontal(lipgloss.Center, left, " ", toggleStyle.Render(a.toggleGlyph()))
	} else {
		left = lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", a.renderLinks())
	}

	right := a.renderButton(st)
	if a.cfg.Username != "" {
		right = lipgloss.JoinHorizontal(lipgloss.Center, userStyle.Render("@"+a.cfg.Username), "  ", right)
	}

	inner := max(a.width-headerStyle.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// not enough room: drop navigation text before the wallet button
		left = ansi.Truncate(left, max(inner-lipgloss.Width(right)-1, 0), "…")
		gap = max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)

	var b strings.Builder
	b.WriteString(headerStyle.Width(a.width).Render(row))
	if st.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Right, errorStyle.Render(st.Err)))
	}
	if a.narrow() && a.menuOpen {
		b.WriteString("\n")
		b.WriteString(a.renderMenu())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(a.help.View(a.keys)))
	return b.String()
}

func (a *App) toggleGlyph() string {
	if a.menuOpen {
		return "×"
	}
	return menuGlyph
}

func (a *App) renderLinks() string {
	parts := make([]string, 0, len(a.cfg.Links))
	for _, l := range a.cfg.Links {
		parts = append(parts, linkStyle.Render(l.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (a *App) renderMenu() string {
	lines := make([]string, 0, len(a.cfg.Links))
	for _, l := range a.cfg.Links {
		lines = append(lines, linkStyle.Render(l.Label)+userStyle.Render(l.Path))
	}
	return menuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderButton(st wallet.State) string {
	label := st.Label()
	switch {
	case st.IsConnecting:
		return buttonBusyStyle.Render(a.spinner.View() + " " + label)
	case st.IsConnected():
		return buttonConnectedStyle.Render("◆ " + label)
	default:
		return buttonStyle.Render("◇ " + label)
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorSky
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	headerStyle = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	linkStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	userStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	menuStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	toggleStyle = lipgloss.NewStyle().Foreground(colorFocus).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	helpStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)

	// wallet button: cyan outline on a dark body, filled when connected, dimmed while disabled
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSapphire).
			Foreground(colorSapphire).
			Padding(0, 2)
	buttonConnectedStyle = buttonStyle.
				BorderForeground(colorTeal).
				Foreground(colorSuccess).
				Background(colorSurface0)
	buttonBusyStyle = buttonStyle.
			BorderForeground(colorSurface1).
			Foreground(colorOverlay0)
)

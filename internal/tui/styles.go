package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#8B5CF6"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#6BCF7F"}
	colorYellow    = lipgloss.AdaptiveColor{Light: "#D8A100", Dark: "#FFD93D"}
	colorRed       = lipgloss.AdaptiveColor{Light: "#D94A4A", Dark: "#FF6B6B"}

	// Per-nutrient bar colors
	colorCarbs    = lipgloss.AdaptiveColor{Light: "#E8913A", Dark: "#FFB454"}
	colorProtein  = lipgloss.AdaptiveColor{Light: "#3A7BD5", Dark: "#61AFEF"}
	colorFats     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#6BCF7F"}
	colorVitamins = lipgloss.AdaptiveColor{Light: "#C24AD9", Dark: "#D678E8"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	optionSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	diagnosisNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	videoTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	videoChannelStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// gaugeColor maps the brain-health score to its traffic-light color.
func gaugeColor(score int) lipgloss.AdaptiveColor {
	switch {
	case score < 40:
		return colorRed
	case score < 70:
		return colorYellow
	default:
		return colorGreen
	}
}

// gaugeStatus labels the brain-health score tier.
func gaugeStatus(score int) string {
	switch {
	case score < 40:
		return "위험"
	case score < 70:
		return "주의"
	default:
		return "건강"
	}
}

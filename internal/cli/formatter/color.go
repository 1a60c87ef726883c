package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierColor returns the style for a badge tier.
func TierColor(tier domain.BadgeTier) lipgloss.Style {
	switch tier {
	case domain.TierChampion:
		return StyleHeader
	case domain.TierMedal:
		return StyleYellow
	case domain.TierGlow:
		return StylePurple
	case domain.TierSpark:
		return StyleRed
	default:
		return StyleDim
	}
}

// StreakColor colors a streak count by how far it has come.
func StreakColor(count int) lipgloss.Style {
	switch {
	case count >= 14:
		return StyleYellow
	case count >= 3:
		return StyleGreen
	case count > 0:
		return StyleFg
	default:
		return StyleDim
	}
}

// PersonalityColor returns the accent used for a reply personality.
func PersonalityColor(p domain.Personality) lipgloss.Style {
	switch p {
	case domain.PersonalityTherapist:
		return StyleBlue
	case domain.PersonalityFriend:
		return StyleGreen
	case domain.PersonalityTrainer:
		return StyleRed
	default:
		return StylePurple
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

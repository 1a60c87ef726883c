package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes a calendar day relative to today, both formatted
// as domain.DateLayout. Unparseable input is returned unchanged.
func RelativeDay(day, today string) string {
	d, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return day
	}
	t, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		return day
	}
	days := int(t.Sub(d).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 0:
		return d.Format("Jan 2, 2006")
	default:
		return d.Format("Jan 2")
	}
}

// HumanTimestamp returns a relative timestamp measured from now.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 15:04")
	}
}

// FormatAmount renders an amount with its unit, pluralizing sessions.
func FormatAmount(amount float64, unit domain.Unit) string {
	n := strconv.FormatFloat(amount, 'f', -1, 64)
	switch unit {
	case domain.UnitSession:
		if amount == 1 {
			return n + " session"
		}
		return n + " sessions"
	case "":
		return n
	default:
		return n + " " + string(unit)
	}
}

// FormatPoints renders a point total in the accent color.
func FormatPoints(points int) string {
	if points == 1 {
		return StyleYellow.Render("1 pt")
	}
	return StyleYellow.Render(fmt.Sprintf("%d pts", points))
}

// FormatStreak renders a streak count with a day suffix.
func FormatStreak(count int) string {
	if count == 1 {
		return StreakColor(count).Render("1 day")
	}
	return StreakColor(count).Render(fmt.Sprintf("%d days", count))
}

// VizLabel returns a short glyph plus name for a visualization hint.
func VizLabel(v domain.VisualizationType) string {
	switch v {
	case domain.VizHeatmap:
		return StyleGreen.Render("▦ heatmap")
	case domain.VizBar:
		return StyleBlue.Render("▇ bar")
	case domain.VizProgress:
		return StyleYellow.Render("▰ progress")
	case domain.VizPie:
		return StylePurple.Render("◔ pie")
	default:
		return StyleDim.Render("--")
	}
}

// PersonalityLabel capitalizes and colors a personality name.
func PersonalityLabel(p domain.Personality) string {
	if p == "" {
		return StyleDim.Render("--")
	}
	s := string(p)
	return PersonalityColor(p).Render(strings.ToUpper(s[:1]) + s[1:])
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// OnOff renders a boolean setting.
func OnOff(v bool) string {
	if v {
		return StyleGreen.Render("on")
	}
	return StyleDim.Render("off")
}

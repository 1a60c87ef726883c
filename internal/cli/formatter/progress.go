package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/scoring"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%, green above 66%,
// yellow from 33% and red below.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, false), clamp(pct)*100)
}

// RenderCompactBar renders only the blocks. dim renders without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clamp(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return bar
	}
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return style.Render(bar)
}

// RenderMilestone shows progress from the current streak toward the next
// badge tier, e.g. "████░░ 5/7 → Glow".
func RenderMilestone(count, width int) string {
	next, tier, ok := scoring.NextMilestone(count)
	if !ok {
		return RenderCompactBar(1, width, false) + " " + StyleHeader.Render("max tier")
	}
	return fmt.Sprintf("%s %s %s",
		RenderCompactBar(float64(count)/float64(next), width, false),
		Dim(fmt.Sprintf("%d/%d", count, next)),
		TierColor(tier).Render("→ "+string(tier)))
}

func clamp(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

package scoring

import (
	"fmt"

	"github.com/alexanderramin/streakmind/internal/domain"
)

type tier struct {
	min  int
	tier domain.BadgeTier
	icon string
}

// tiers is ordered highest first; only the first match is awarded.
var tiers = []tier{
	{30, domain.TierChampion, "🏆"},
	{14, domain.TierMedal, "🏅"},
	{7, domain.TierGlow, "🌟"},
	{3, domain.TierSpark, "🔥"},
}

// BadgeFor returns the highest tier reached by count.
func BadgeFor(activity string, count int) (domain.Badge, bool) {
	for _, t := range tiers {
		if count >= t.min {
			return domain.Badge{
				Activity:    activity,
				Tier:        t.tier,
				Name:        fmt.Sprintf("%s %s", activity, t.tier),
				Icon:        t.icon,
				Description: fmt.Sprintf("%d-day streak!", t.min),
			}, true
		}
	}
	return domain.Badge{}, false
}

// Badges evaluates every streak in map order.
func Badges(streaks domain.StreakMap) []domain.Badge {
	badges := make([]domain.Badge, 0, streaks.Len())
	for _, e := range streaks.Entries() {
		if b, ok := BadgeFor(e.Activity, e.Count); ok {
			badges = append(badges, b)
		}
	}
	return badges
}

// IsMilestone reports whether count is exactly a tier threshold.
func IsMilestone(count int) bool {
	for _, t := range tiers {
		if count == t.min {
			return true
		}
	}
	return false
}

// NextMilestone returns the smallest tier threshold above count. ok is false
// once the top tier is reached.
func NextMilestone(count int) (min int, t domain.BadgeTier, ok bool) {
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].min > count {
			return tiers[i].min, tiers[i].tier, true
		}
	}
	return 0, "", false
}

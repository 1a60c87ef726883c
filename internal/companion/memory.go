package companion

import (
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/scoring"
)

// maxRememberedLen drops captured phrases longer than this.
const maxRememberedLen = 80

type memoryRule struct {
	category string
	re       *regexp.Regexp
}

var (
	namePattern = regexp.MustCompile(`(?i)\b(?:my name is|call me)\s+(\p{L}[\p{L}'-]*)`)

	timeOfDayPattern = regexp.MustCompile(`(?i)\b(?:usually|prefer to|like to)\b.*\bin the (morning|afternoon|evening)\b`)

	memoryRules = []memoryRule{
		{"goals", regexp.MustCompile(`(?i)\bmy goal is (?:to )?([^.!?]+)`)},
		{"goals", regexp.MustCompile(`(?i)\bi(?:'m| am) trying to ([^.!?]+)`)},
		{"strugglingWith", regexp.MustCompile(`(?i)\bstruggl(?:e|ing) with ([^.!?]+)`)},
		{"challenges", regexp.MustCompile(`(?i)\bi (?:can't|cannot|keep failing to) ([^.!?]+)`)},
		{"celebrating", regexp.MustCompile(`(?i)\bi(?:'m| am) (?:so |really )?proud (?:of|that) ([^.!?]+)`)},
	}
)

// ObserveMessage updates memory from one transcript message. User messages
// are mined for personal context; every message refreshes the session time.
func ObserveMessage(m *domain.UserMemory, role domain.Role, text string, known []string, now time.Time) {
	m.ConversationContext.LastSession = now
	m.UpdatedAt = now
	if role != domain.RoleUser {
		return
	}

	if g := namePattern.FindStringSubmatch(text); g != nil {
		m.Name = strings.ToUpper(g[1][:1]) + g[1][1:]
	}
	if g := timeOfDayPattern.FindStringSubmatch(text); g != nil {
		m.Preferences.TimeOfDay = strings.ToLower(g[1])
	}
	for _, r := range memoryRules {
		for _, g := range r.re.FindAllStringSubmatch(text, -1) {
			item := strings.TrimSpace(g[1])
			if item == "" || len(item) > maxRememberedLen {
				continue
			}
			_ = m.Remember(r.category, item)
		}
	}

	lower := strings.ToLower(text)
	for _, name := range known {
		if n := strings.ToLower(name); n != "" && strings.Contains(lower, n) {
			_ = m.Remember("commonTopics", name)
		}
	}
}

// ObserveLog records an accepted log: the activity becomes a preferred one
// and a streak reaching a badge tier becomes an achievement.
func ObserveLog(m *domain.UserMemory, entry domain.LogEntry, streak int, streakUpdated bool, now time.Time) {
	m.UpdatedAt = now
	_ = m.Remember("preferredActivities", entry.Activity)
	if !streakUpdated {
		return
	}
	if !scoring.IsMilestone(streak) {
		return
	}
	badge, ok := scoring.BadgeFor(entry.Activity, streak)
	if !ok {
		return
	}
	_ = m.Remember("achievements", badge.Name)
	_ = m.Remember("celebrating", badge.Name)
}

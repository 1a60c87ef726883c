package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/scoring"
)

const recentLogsShown = 5

// FormatIngestResult renders a reply plus whatever the message changed.
func FormatIngestResult(res *contract.IngestResult, showScores bool) string {
	var b strings.Builder

	label := PersonalityLabel(domain.Personality(res.Personality))
	if res.Personality == "" {
		label = PersonalityLabel(domain.PersonalityDefault)
	}
	b.WriteString(label + StyleDim.Render(" › ") + res.Reply + "\n")

	switch res.Kind {
	case contract.KindLog:
		if res.LogEntry == nil {
			break
		}
		e := res.LogEntry
		line := fmt.Sprintf("  %s %s", StyleGreen.Render("✔"), Bold(e.Activity))
		line += Dim(" · " + FormatAmount(e.Amount, e.Unit))
		if showScores {
			line += Dim(" · ") + FormatPoints(res.PointsAwarded)
		}
		if res.CurrentStreak != nil {
			line += Dim(" · streak ") + FormatStreak(*res.CurrentStreak)
			if res.StreakUpdated {
				line += StyleGreen.Render(" ↑")
			}
			if bd, ok := scoring.BadgeFor(e.Activity, *res.CurrentStreak); ok && res.StreakUpdated && scoring.IsMilestone(*res.CurrentStreak) {
				line += "  " + TierColor(bd.Tier).Render(bd.Icon+" "+bd.Name)
			}
		}
		b.WriteString(line + "\n")
	case contract.KindActivity:
		b.WriteString(fmt.Sprintf("  %s now tracking %s\n", StyleGreen.Render("+"), Bold(res.ActivityCreated)))
	case contract.KindCommand:
		if res.CommandAction != "" {
			b.WriteString(Dim("  "+res.CommandAction) + "\n")
		}
	}
	if res.FallbackReply {
		b.WriteString(Dim("  (offline reply)") + "\n")
	}
	return b.String()
}

// FormatStats renders the dashboard: totals, streaks with badge progress and
// the most recent log entries.
func FormatStats(st *contract.Stats, today string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total points:"), FormatPoints(st.TotalPoints)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Activities:  "), StyleFg.Render(strconv.Itoa(len(st.Activities)))))

	if st.Streaks.Len() == 0 {
		b.WriteString("\n" + Dim("No streaks yet. Log something to start one.") + "\n")
		return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString("\n" + Header("Streaks") + "\n")
	b.WriteString(FormatStreaks(st.Streaks))

	if len(st.Badges) > 0 {
		b.WriteString("\n" + Header("Badges") + "\n")
		for _, badge := range st.Badges {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				badge.Icon,
				TierColor(badge.Tier).Render(badge.Name),
				Dim(badge.Description)))
		}
	}

	if len(st.Logs) > 0 {
		logs := st.Logs
		if len(logs) > recentLogsShown {
			logs = logs[:recentLogsShown]
		}
		b.WriteString("\n" + Header("Recent") + "\n")
		for _, e := range logs {
			b.WriteString(fmt.Sprintf("%-10s %s %s %s\n",
				Dim(RelativeDay(e.Date, today)),
				Bold(e.Activity),
				Dim(FormatAmount(e.Amount, e.Unit)),
				FormatPoints(e.Points)))
		}
	}
	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}

// FormatStreaks renders a streak table with progress toward the next badge.
func FormatStreaks(m domain.StreakMap) string {
	if m.Len() == 0 {
		return Dim("No streaks.") + "\n"
	}
	rows := make([][]string, 0, m.Len())
	for _, e := range m.Entries() {
		badge := Dim("--")
		if bd, ok := scoring.BadgeFor(e.Activity, e.Count); ok {
			badge = bd.Icon + " " + TierColor(bd.Tier).Render(string(bd.Tier))
		}
		rows = append(rows, []string{
			Bold(e.Activity),
			FormatStreak(e.Count),
			badge,
			RenderMilestone(e.Count, 10),
		})
	}
	return RenderTable([]string{"ACTIVITY", "STREAK", "BADGE", "NEXT"}, rows, 1)
}

// FormatActivities renders activity definitions with their scoring and
// current streak.
func FormatActivities(acts []domain.Activity, streaks domain.StreakMap) string {
	if len(acts) == 0 {
		return Dim("No activities yet. Try 'streakmind activity create <name>'.") + "\n"
	}
	rows := make([][]string, 0, len(acts))
	for _, a := range acts {
		count := streaks.Get(a.Name)
		rows = append(rows, []string{
			Bold(a.Name),
			scoringLabel(a),
			VizLabel(a.VisualizationType),
			FormatStreak(count),
			Dim(truncate(a.Description, 40)),
		})
	}
	return RenderTable([]string{"NAME", "POINTS", "VIEW", "STREAK", "DESCRIPTION"}, rows, 3)
}

func scoringLabel(a domain.Activity) string {
	if a.HasCustomPoints() {
		return StyleYellow.Render(strconv.FormatFloat(*a.CustomPointsPerUnit, 'f', -1, 64) + "/unit")
	}
	if domain.IsBuiltinActivity(a.Name) {
		return Dim("builtin")
	}
	return Dim("default")
}

// FormatLogs renders log entries newest first as stored.
func FormatLogs(logs []domain.LogEntry, today string) string {
	if len(logs) == 0 {
		return Dim("No log entries.") + "\n"
	}
	rows := make([][]string, 0, len(logs))
	for _, e := range logs {
		rows = append(rows, []string{
			TruncID(e.ID),
			RelativeDay(e.Date, today),
			Bold(e.Activity),
			FormatAmount(e.Amount, e.Unit),
			FormatPoints(e.Points),
			Dim(truncate(e.Message, 40)),
		})
	}
	return RenderTable([]string{"ID", "DAY", "ACTIVITY", "AMOUNT", "POINTS", "MESSAGE"}, rows, 4)
}

// FormatTranscript renders chat history oldest first.
func FormatTranscript(msgs []domain.ChatMessage, now time.Time) string {
	if len(msgs) == 0 {
		return Dim("No messages yet.") + "\n"
	}
	var b strings.Builder
	for _, m := range msgs {
		who := StyleBlue.Render("you")
		if m.Role == domain.RoleAssistant {
			who = StylePurple.Render("streakmind")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n  %s\n",
			TruncID(m.ID), who, Dim(HumanTimestamp(m.Timestamp, now)), m.Message))
	}
	return b.String()
}

// FormatSettings renders the settings document grouped by section.
func FormatSettings(s *domain.Settings) string {
	var b strings.Builder
	row := func(key, val string) {
		b.WriteString(fmt.Sprintf("  %-34s %s\n", Dim(key), val))
	}

	b.WriteString(Header("General") + "\n")
	row("showScores", OnOff(s.ShowScores))
	row("theme", StyleFg.Render(s.Theme))

	b.WriteString("\n" + Header("Personalities") + "\n")
	row("enabledPersonalities.therapist", OnOff(s.EnabledPersonalities.Therapist))
	row("enabledPersonalities.friend", OnOff(s.EnabledPersonalities.Friend))
	row("enabledPersonalities.trainer", OnOff(s.EnabledPersonalities.Trainer))

	b.WriteString("\n" + Header("Notifications") + "\n")
	row("notifications.streakReminders", OnOff(s.Notifications.StreakReminders))
	row("notifications.dailyGoals", OnOff(s.Notifications.DailyGoals))
	row("notifications.weeklyReports", OnOff(s.Notifications.WeeklyReports))

	b.WriteString("\n" + Header("Preferences") + "\n")
	row("preferences.defaultVisualization", VizLabel(s.Preferences.DefaultVisualization))
	row("preferences.timeFormat", StyleFg.Render(s.Preferences.TimeFormat))
	row("preferences.startWeekOn", StyleFg.Render(s.Preferences.StartWeekOn))

	return RenderBox("Settings", strings.TrimRight(b.String(), "\n"))
}

// FormatMemory renders remembered personal context, skipping empty lists.
func FormatMemory(m *domain.UserMemory) string {
	var b strings.Builder
	name := m.Name
	if name == "" {
		name = Dim("unknown")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name:"), Bold(name)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Style:"),
		StyleFg.Render(m.Preferences.MotivationStyle+", "+m.Preferences.PersonalityPreference)))

	empty := true
	for _, cat := range domain.MemoryCategories {
		items := m.Items(cat)
		if len(items) == 0 {
			continue
		}
		empty = false
		b.WriteString("\n" + StyleHeader.Render(cat) + "\n")
		for _, it := range items {
			b.WriteString("  " + StyleDim.Render("•") + " " + it + "\n")
		}
	}
	if empty {
		b.WriteString("\n" + Dim("Nothing remembered yet.") + "\n")
	}
	return RenderBox("Memory", strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// FormatImportResult summarizes a restore.
func FormatImportResult(res *contract.ImportResult) string {
	var b strings.Builder
	verb := "Restored"
	if res.Mode == contract.ImportMerge {
		verb = "Merged"
	}
	b.WriteString(fmt.Sprintf("%s %s %d activities and %d log entries\n",
		StyleGreen.Render("✔"), verb, res.ActivitiesAdded, res.LogsAdded))
	if skipped := res.ActivitiesSkipped + res.LogsSkipped; skipped > 0 {
		b.WriteString(Dim(fmt.Sprintf("  skipped %d already stored", skipped)) + "\n")
	}
	var restored []string
	if res.SettingsRestored {
		restored = append(restored, "settings")
	}
	if res.MemoryRestored {
		restored = append(restored, "memory")
	}
	if res.TranscriptRestored {
		restored = append(restored, "transcript")
	}
	if len(restored) > 0 {
		b.WriteString(Dim("  also restored "+strings.Join(restored, ", ")) + "\n")
	}
	b.WriteString(FormatStreaks(res.Streaks))
	return b.String()
}

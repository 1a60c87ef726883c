package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown when the chat shell starts.
func FormatShellWelcome(totalPoints, activeStreaks int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  streakmind") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		FormatPoints(totalPoints),
		Dim(fmt.Sprintf("· %d active streaks", activeStreaks))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tell me what you did, e.g. \"did 3 coding questions\" or \"slept 8 hours\".") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("/stats") + StyleDim.Render("         Points, streaks and badges") + "\n")
	b.WriteString("  " + StyleGreen.Render("/new") + StyleDim.Render("           Create an activity") + "\n")
	b.WriteString("  " + StyleGreen.Render("/help") + StyleDim.Render("          Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Up/Down for history. Type '/quit' to leave.") + "\n")

	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-26s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the shell command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Logging",
			commands: [][]string{
				{"<anything>", "Log an activity or just chat"},
				{"start tracking <name>", "Create an activity from chat"},
				{"delete/rename <name>", "Manage activities in plain words"},
			},
		},
		{
			title: "Views",
			commands: [][]string{
				{"/stats", "Points, streaks and badges"},
				{"/activities", "Tracked activities"},
				{"/logs", "Recent log entries"},
				{"/memory", "What I remember about you"},
			},
		},
		{
			title: "Actions",
			commands: [][]string{
				{"/new", "Create an activity with a form"},
				{"/clear", "Clear the screen"},
				{"/quit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Every CLI subcommand is also available outside the shell."))
	return RenderBox("Commands", b.String())
}

package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Action is the kind of CRUD command recognized in a message.
type Action string

const (
	ActionNone      Action = "none"
	ActionDelete    Action = "delete"
	ActionRename    Action = "rename"
	ActionSetPoints Action = "setPoints"
)

// Command is an imperative activity-management request. Names are the raw
// lowercased captures; callers resolve them against the known activities.
type Command struct {
	Action   Action   `json:"action"`
	Activity string   `json:"activity,omitempty"`
	NewName  string   `json:"newName,omitempty"`
	Points   *float64 `json:"points,omitempty"`
}

var (
	deleteRe    = regexp.MustCompile(`(?:delete|remove)\s+(.+?)(?:\s+(?:activity|habit))?$`)
	renameRe    = regexp.MustCompile(`(?:rename|change\s+name\s+of)\s+(.+?)\s+to\s+(.+)$`)
	setPointsRe = regexp.MustCompile(`set\s+(.+?)\s+(?:points?\s+)?to\s+(\d+(?:\.\d+)?)`)

	pointsWordRe = regexp.MustCompile(`\bpoints?\b`)
)

// ParseCommand recognizes delete, rename and set-points commands. A command
// keyword whose pattern lacks a required capture yields ActionNone.
func ParseCommand(text string) Command {
	lower := trimSentence(strings.ToLower(text))
	none := Command{Action: ActionNone}

	switch {
	case strings.Contains(lower, "delete"), strings.Contains(lower, "remove"):
		m := deleteRe.FindStringSubmatch(lower)
		if m == nil {
			return none
		}
		name := stripArticles(m[1])
		if name == "" {
			return none
		}
		return Command{Action: ActionDelete, Activity: name}

	case strings.Contains(lower, "rename"), strings.Contains(lower, "change name"):
		m := renameRe.FindStringSubmatch(lower)
		if m == nil {
			return none
		}
		oldName, newName := stripArticles(m[1]), strings.TrimSpace(m[2])
		if oldName == "" || newName == "" {
			return none
		}
		return Command{Action: ActionRename, Activity: oldName, NewName: newName}

	case strings.Contains(lower, "set points"), strings.Contains(lower, "points to"):
		m := setPointsRe.FindStringSubmatch(lower)
		if m == nil {
			return none
		}
		name := pointsWordRe.ReplaceAllString(m[1], "")
		name = strings.TrimSpace(name)
		name = strings.TrimSpace(strings.TrimPrefix(name, "for "))
		name = stripArticles(name)
		points, err := strconv.ParseFloat(m[2], 64)
		if name == "" || err != nil {
			return none
		}
		return Command{Action: ActionSetPoints, Activity: name, Points: &points}
	}
	return none
}

// trimSentence drops surrounding space and trailing sentence punctuation.
func trimSentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?")
}

func stripArticles(name string) string {
	fields := strings.Fields(name)
	for len(fields) > 0 && (fields[0] == "my" || fields[0] == "the") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

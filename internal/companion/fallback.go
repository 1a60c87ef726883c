package companion

import "fmt"

// Deterministic replies used when generation is disabled, fails or returns
// nothing. They never depend on the backend.

// FallbackReply returns the templated reply for an event after a failed
// generation call.
func FallbackReply(ev Event) string {
	switch ev.Kind {
	case EventLog:
		if ev.Entry == nil {
			return logSavedReply
		}
		msg := fmt.Sprintf("Great job! +%d points.", ev.Points)
		if ev.StreakUpdated {
			msg += fmt.Sprintf(" %s streak: %d days!", ev.Entry.Activity, ev.Streak)
		}
		return msg
	case EventActivityCreated:
		return fmt.Sprintf("Perfect! I've added %q to your habits. You can now track it by mentioning it in our chat!", ev.Activity)
	case EventParseMiss:
		return parseMissReply
	default:
		return unreachableReply
	}
}

// EmptyReply returns the templated reply when the backend answered with no
// text.
func EmptyReply(ev Event) string {
	switch ev.Kind {
	case EventLog:
		return "Logged! Keep it up."
	case EventActivityCreated:
		return fmt.Sprintf("Great! I've added %q to your habit tracking. Start logging it today!", ev.Activity)
	default:
		return FallbackReply(ev)
	}
}

const (
	logSavedReply    = "⚠️ I couldn't reach the brain right now, but your log is saved."
	unreachableReply = "⚠️ I couldn't reach the brain right now. Try again in a moment."
	parseMissReply   = "I didn't catch a habit in that. Try something like \"Did 2 coding questions\" or \"Slept 8 hours yesterday\"."
)

// AlreadyTrackingReply answers a tracking request for an existing activity.
func AlreadyTrackingReply(name string) string {
	return fmt.Sprintf("You're already tracking %q. Just mention it in chat whenever you do it!", name)
}

// Command replies.

func DeletedReply(name string) string { return fmt.Sprintf("Deleted %q from your habits.", name) }

func DeleteFailedReply(name string) string {
	return fmt.Sprintf("Couldn't find %q to delete.", name)
}

func RenamedReply(oldName, newName string) string {
	return fmt.Sprintf("Renamed %q to %q.", oldName, newName)
}

func RenameFailedReply(name string) string { return fmt.Sprintf("Couldn't rename %q.", name) }

func PointsSetReply(name string, points float64) string {
	return fmt.Sprintf("Set %q to %s points per session.", name, formatAmount(points))
}

func PointsFailedReply(name string) string {
	return fmt.Sprintf("Couldn't set points for %q.", name)
}

package intent

import "strings"

// habitVocabulary marks a message as habit-related.
var habitVocabulary = []string{
	"track", "log", "streak", "habit", "points", "score",
	"gym", "coding", "sleep", "meditation", "reading", "exercise", "workout",
	"did", "completed", "finished", "yesterday", "today",
}

// IsGeneralQuery reports whether text is an open-ended question unrelated to
// habit tracking. Habit vocabulary, a known activity name, a recognized
// command or a tracking request all make it habit-related.
func IsGeneralQuery(text string, known []string) bool {
	lower := strings.ToLower(text)
	for _, k := range habitVocabulary {
		if strings.Contains(lower, k) {
			return false
		}
	}
	for _, name := range known {
		if n := strings.ToLower(name); n != "" && strings.Contains(lower, n) {
			return false
		}
	}
	if ParseCommand(text).Action != ActionNone {
		return false
	}
	if _, ok := DetectTrackRequest(text); ok {
		return false
	}
	return true
}

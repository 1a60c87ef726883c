package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxActivityNameLen bounds names discovered from tracking requests, in
// characters.
const MaxActivityNameLen = 50

var (
	// trackLeadRe matches one leading clause that may precede the track verb:
	// greetings, politeness and "I want to" style phrasing.
	trackLeadRe = regexp.MustCompile(`^(?:hey|hi|hello|ok|okay|so|please|pls|` +
		`let'?s|let us|can you|could you|would you|will you|help me|` +
		`i(?:'d| would) (?:like|love) to|i want to|i wanna|wanna|i need to|i'?m going to|` +
		`want to|would like to)(?:[\s,]+|$)`)

	trackPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:start|begin)(?:\s+to)?\s+track(?:ing)?\s+(.+)$`),
		regexp.MustCompile(`^add\s+(.+?)\s+to\s+my(?:\s+[\p{L}-]+)*?\s+(?:habits?|tracker|list)\b`),
		regexp.MustCompile(`^track\s+(.+)$`),
	}

	trackTailRe   = regexp.MustCompile(`\s+(?:for me|from now on|every ?day|each day|please)$`)
	trackFillerRe = regexp.MustCompile(`\b(?:habits?|daily|tracking|for me)\b`)
	trackPunctRe  = regexp.MustCompile(`[^\p{L}\p{N}\s'-]+`)

	interrogatives = map[string]bool{
		"how": true, "what": true, "why": true, "when": true, "where": true,
		"which": true, "who": true, "do": true, "does": true, "did": true,
		"is": true, "are": true, "should": true,
	}
)

// DetectTrackRequest recognizes requests to start tracking a habit, such as
// "I want to track X", "let's start tracking X", "add X to my daily habits"
// and "can you track X for me". Questions about tracking are not requests.
// Returns the cleaned activity name.
func DetectTrackRequest(text string) (string, bool) {
	lower := trimSentence(strings.ToLower(text))
	for {
		if startsWithInterrogative(lower) {
			return "", false
		}
		loc := trackLeadRe.FindStringIndex(lower)
		if loc == nil || loc[1] == 0 {
			break
		}
		lower = strings.TrimSpace(lower[loc[1]:])
	}

	for _, re := range trackPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		name := trackTailRe.ReplaceAllString(m[1], "")
		name = trackFillerRe.ReplaceAllString(name, " ")
		name = trackPunctRe.ReplaceAllString(name, " ")
		name = stripArticles(name)
		if name == "" || utf8.RuneCountInString(name) >= MaxActivityNameLen {
			return "", false
		}
		return name, true
	}
	return "", false
}

func startsWithInterrogative(s string) bool {
	first, _, _ := strings.Cut(s, " ")
	return interrogatives[strings.Trim(first, ",")]
}

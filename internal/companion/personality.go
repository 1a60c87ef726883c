package companion

import (
	"strings"

	"github.com/alexanderramin/streakmind/internal/domain"
)

// personalityRules are checked in order; the first family with a keyword
// present in the message wins.
var personalityRules = []struct {
	personality domain.Personality
	keywords    []string
}{
	{domain.PersonalityTherapist, []string{
		"feel", "struggle", "depressed", "anxious", "stressed", "motivation",
		"hard time", "difficult", "help me",
	}},
	{domain.PersonalityTrainer, []string{
		"gym", "workout", "exercise", "push", "harder", "challenge", "pr",
		"personal record", "lift", "lazy", "procrastinating", "excuse", "skip",
		"missed", "didn't do", "failed", "disappointed",
	}},
	{domain.PersonalityFriend, []string{
		"awesome", "great", "amazing", "love", "friend", "chat", "how are", "what's up",
	}},
}

// DetectPersonality picks the conversational tone a message calls for.
// Keywords match as plain substrings, so "pr" also fires inside "practice".
func DetectPersonality(text string) domain.Personality {
	lower := strings.ToLower(text)
	for _, r := range personalityRules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.personality
			}
		}
	}
	return domain.PersonalityDefault
}

// EffectivePersonality downgrades a disabled personality to the default.
func EffectivePersonality(p domain.Personality, s domain.Settings) domain.Personality {
	if !s.PersonalityEnabled(p) {
		return domain.PersonalityDefault
	}
	return p
}

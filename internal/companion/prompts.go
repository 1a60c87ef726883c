package companion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/streakmind/internal/domain"
)

const generalPrompt = "You are a helpful AI assistant powered by Gemini. Answer the user's question naturally and helpfully. " +
	"You can discuss any topic, provide information, help with tasks, or have casual conversation. " +
	"Be knowledgeable, friendly, and engaging."

var modePrompts = map[domain.Personality]string{
	domain.PersonalityTherapist: "You are StreakMind in therapist mode: warm, empathetic, understanding, and supportive. " +
		"Provide emotional support and gentle encouragement. Ask thoughtful questions about their feelings and offer comfort. " +
		"Keep responses caring but concise (2-3 sentences max).",
	domain.PersonalityTrainer: "You are StreakMind in trainer mode: energetic, motivational, focused on pushing limits and celebrating victories. " +
		"Use fitness terminology and pump them up. When users show accountability issues, provide firm but caring motivation. " +
		"Focus on progress, gains, and next challenges. Keep responses high-energy but concise (2-3 sentences max).",
	domain.PersonalityFriend: "You are StreakMind in friend mode: casual, supportive, fun, and relatable. " +
		"Chat like a good friend who genuinely cares about their progress. Be encouraging and positive. " +
		"Keep responses friendly and conversational (2-3 sentences max).",
	domain.PersonalityDefault: "You are StreakMind, an adaptive AI companion that helps users track habits and stay motivated. " +
		"Be positive, supportive, and encouraging. Adapt your tone to match the user's energy. " +
		"Keep responses helpful and concise (2-3 sentences max).",
}

// PromptContext is the tracker and user context folded into system prompts.
type PromptContext struct {
	ActiveHabits  int
	HighestStreak int
	Memory        string
	Settings      domain.Settings
}

// SystemPrompt builds the system prompt for a reply. General queries get the
// plain assistant prompt; everything else gets the personality prompt with
// tracker stats appended.
func SystemPrompt(p domain.Personality, general bool, pc PromptContext) string {
	if general {
		if pc.Memory != "" {
			return generalPrompt + " Remember: " + pc.Memory
		}
		return generalPrompt
	}

	base := fmt.Sprintf("Current user stats: %d active habits, highest streak: %d days.",
		pc.ActiveHabits, pc.HighestStreak)
	if pc.Memory != "" {
		base += " Personal context: " + pc.Memory
	}

	prompt, ok := modePrompts[EffectivePersonality(p, pc.Settings)]
	if !ok {
		prompt = modePrompts[domain.PersonalityDefault]
	}
	return prompt + " " + base
}

// UserPrompt renders the event the reply should respond to.
func UserPrompt(ev Event) string {
	switch ev.Kind {
	case EventLog:
		if ev.Entry == nil {
			return ev.Message
		}
		var b strings.Builder
		fmt.Fprintf(&b, "User logged: %s (%s %s). Points awarded: %d. ",
			ev.Entry.Activity, formatAmount(ev.Entry.Amount), ev.Entry.Unit, ev.Points)
		if ev.StreakUpdated {
			fmt.Fprintf(&b, "Streak updated to %d.", ev.Streak)
		} else {
			b.WriteString("Streak unchanged.")
		}
		return b.String()
	case EventActivityCreated:
		return fmt.Sprintf("User wants to start tracking a new habit: %q. "+
			"Congratulate them on adding this new habit and encourage them to start their first log.", ev.Activity)
	default:
		return ev.Message
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

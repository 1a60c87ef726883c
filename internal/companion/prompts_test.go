package companion

import (
	"testing"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt_GeneralIgnoresStats(t *testing.T) {
	pc := PromptContext{ActiveHabits: 3, HighestStreak: 9, Memory: "Name: Sam", Settings: domain.DefaultSettings()}

	got := SystemPrompt(domain.PersonalityTrainer, true, pc)
	assert.Contains(t, got, "helpful AI assistant")
	assert.Contains(t, got, "Remember: Name: Sam")
	assert.NotContains(t, got, "active habits")
}

func TestSystemPrompt_PersonalityWithStats(t *testing.T) {
	pc := PromptContext{ActiveHabits: 3, HighestStreak: 9, Settings: domain.DefaultSettings()}

	got := SystemPrompt(domain.PersonalityTherapist, false, pc)
	assert.Contains(t, got, "therapist mode")
	assert.Contains(t, got, "Current user stats: 3 active habits, highest streak: 9 days.")
	assert.NotContains(t, got, "Personal context")
}

func TestSystemPrompt_DisabledPersonalityUsesDefault(t *testing.T) {
	s := domain.DefaultSettings()
	s.EnabledPersonalities.Therapist = false

	got := SystemPrompt(domain.PersonalityTherapist, false, PromptContext{Settings: s, Memory: "Goals: run"})
	assert.Contains(t, got, "adaptive AI companion")
	assert.Contains(t, got, "Personal context: Goals: run")
}

func TestUserPrompt(t *testing.T) {
	entry := &domain.LogEntry{Activity: "sleep", Amount: 7.5, Unit: domain.UnitHours}

	assert.Equal(t,
		"User logged: sleep (7.5 hours). Points awarded: 7. Streak updated to 4.",
		UserPrompt(Event{Kind: EventLog, Entry: entry, Points: 7, StreakUpdated: true, Streak: 4}))
	assert.Equal(t,
		"User logged: sleep (7.5 hours). Points awarded: 7. Streak unchanged.",
		UserPrompt(Event{Kind: EventLog, Entry: entry, Points: 7}))
	assert.Contains(t, UserPrompt(Event{Kind: EventActivityCreated, Activity: "yoga"}),
		`start tracking a new habit: "yoga"`)
	assert.Equal(t, "hello", UserPrompt(Event{Kind: EventConversation, Message: "hello"}))
}

func TestFallbackReply(t *testing.T) {
	entry := &domain.LogEntry{Activity: "coding"}

	assert.Equal(t, "Great job! +10 points. coding streak: 3 days!",
		FallbackReply(Event{Kind: EventLog, Entry: entry, Points: 10, StreakUpdated: true, Streak: 3}))
	assert.Equal(t, "Great job! +10 points.",
		FallbackReply(Event{Kind: EventLog, Entry: entry, Points: 10}))
	assert.Equal(t, `Perfect! I've added "yoga" to your habits. You can now track it by mentioning it in our chat!`,
		FallbackReply(Event{Kind: EventActivityCreated, Activity: "yoga"}))
	assert.Contains(t, FallbackReply(Event{Kind: EventParseMiss}), "didn't catch")
	assert.Equal(t, "Logged! Keep it up.", EmptyReply(Event{Kind: EventLog, Entry: entry}))
}

func TestCommandReplies(t *testing.T) {
	assert.Equal(t, `Deleted "yoga" from your habits.`, DeletedReply("yoga"))
	assert.Equal(t, `Couldn't find "chess" to delete.`, DeleteFailedReply("chess"))
	assert.Equal(t, `Renamed "yoga" to "stretching".`, RenamedReply("yoga", "stretching"))
	assert.Equal(t, `Set "yoga" to 2.5 points per session.`, PointsSetReply("yoga", 2.5))
	assert.Equal(t, `Set "yoga" to 15 points per session.`, PointsSetReply("yoga", 15))
}

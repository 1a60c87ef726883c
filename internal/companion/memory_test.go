package companion

import (
	"testing"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveMessage_ExtractsPersonalContext(t *testing.T) {
	m := domain.NewUserMemory("m", testutil.FixedNow)
	text := "Hi, my name is sam. My goal is to read 20 books. I'm struggling with my sleep schedule! " +
		"I usually work out in the morning."

	ObserveMessage(&m, domain.RoleUser, text, []string{"sleep", "yoga"}, testutil.FixedNow)

	assert.Equal(t, "Sam", m.Name)
	assert.Equal(t, []string{"read 20 books"}, m.PersonalContext.Goals)
	assert.Equal(t, []string{"my sleep schedule"}, m.ConversationContext.StrugglingWith)
	assert.Equal(t, "morning", m.Preferences.TimeOfDay)
	assert.Equal(t, []string{"sleep"}, m.ConversationContext.CommonTopics)
	assert.True(t, m.ConversationContext.LastSession.Equal(testutil.FixedNow))
}

func TestObserveMessage_AssistantOnlyTouchesSession(t *testing.T) {
	m := domain.NewUserMemory("m", testutil.FixedNow)
	later := testutil.FixedNow.Add(1)

	ObserveMessage(&m, domain.RoleAssistant, "my name is Bot", nil, later)

	assert.Empty(t, m.Name)
	assert.True(t, m.ConversationContext.LastSession.Equal(later))
}

func TestObserveLog_MilestoneBecomesAchievement(t *testing.T) {
	m := domain.NewUserMemory("m", testutil.FixedNow)
	entry := domain.LogEntry{Activity: "coding"}

	ObserveLog(&m, entry, 6, true, testutil.FixedNow)
	assert.Empty(t, m.PersonalContext.Achievements)

	ObserveLog(&m, entry, 7, true, testutil.FixedNow)
	ObserveLog(&m, entry, 7, false, testutil.FixedNow)

	assert.Equal(t, []string{"coding"}, m.Preferences.PreferredActivities)
	assert.Equal(t, []string{"coding Glow"}, m.PersonalContext.Achievements)
	assert.Equal(t, []string{"coding Glow"}, m.ConversationContext.Celebrating)
}

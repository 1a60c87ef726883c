package companion

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func logEvent() Event {
	return Event{
		Kind:          EventLog,
		Message:       "Went to the gym",
		Entry:         &domain.LogEntry{Activity: "gym", Amount: 1, Unit: domain.UnitSession},
		Points:        10,
		StreakUpdated: true,
		Streak:        2,
	}
}

func TestReply_UsesGeneratedText(t *testing.T) {
	fake := testutil.NewFakeLLM("Beast mode!")
	svc := NewReplyService(fake, time.Second, nil)

	got := svc.Reply(context.Background(), logEvent(), PromptContext{Settings: domain.DefaultSettings()})

	assert.Equal(t, "Beast mode!", got.Text)
	assert.False(t, got.Fallback)
	assert.Equal(t, domain.PersonalityTrainer, got.Personality)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, llm.TaskReply, reqs[0].Task)
	assert.Contains(t, reqs[0].SystemPrompt, "trainer mode")
	assert.Contains(t, reqs[0].UserPrompt, "User logged: gym (1 session)")
}

func TestReply_GeneralQueryUsesChatTaskAndDefaultTone(t *testing.T) {
	fake := testutil.NewFakeLLM("Paris.")
	svc := NewReplyService(fake, time.Second, nil)

	got := svc.Reply(context.Background(),
		Event{Kind: EventConversation, Message: "I feel curious: capital of France?", General: true},
		PromptContext{Settings: domain.DefaultSettings()})

	assert.Equal(t, "Paris.", got.Text)
	assert.Equal(t, domain.PersonalityDefault, got.Personality)
	assert.Equal(t, llm.TaskChat, fake.Requests()[0].Task)
}

func TestReply_ErrorFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	fake := testutil.NewScriptedLLM(testutil.FakeStep{Err: llm.ErrUnavailable})
	svc := NewReplyService(fake, time.Second, zap.New(core))

	got := svc.Reply(context.Background(), logEvent(), PromptContext{})

	assert.True(t, got.Fallback)
	assert.Equal(t, "Great job! +10 points. gym streak: 2 days!", got.Text)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "UNAVAILABLE", logs.All()[0].ContextMap()["error_code"])
}

func TestReply_TimeoutIsBounded(t *testing.T) {
	fake := testutil.NewScriptedLLM(testutil.FakeStep{Block: true})
	svc := NewReplyService(fake, 20*time.Millisecond, nil)

	start := time.Now()
	got := svc.Reply(context.Background(), Event{Kind: EventActivityCreated, Activity: "yoga"}, PromptContext{})

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, got.Fallback)
	assert.Contains(t, got.Text, `I've added "yoga"`)
}

func TestReply_EmptyOutputUsesEmptyTemplate(t *testing.T) {
	svc := NewReplyService(testutil.NewFakeLLM(""), time.Second, nil)

	got := svc.Reply(context.Background(), logEvent(), PromptContext{})
	assert.Equal(t, "Logged! Keep it up.", got.Text)
	assert.True(t, got.Fallback)
}

func TestReply_NilClientIsTemplated(t *testing.T) {
	svc := NewReplyService(nil, 0, nil)

	got := svc.Reply(context.Background(), Event{Kind: EventParseMiss, Message: "blorp"}, PromptContext{})
	assert.True(t, got.Fallback)
	assert.Contains(t, got.Text, "didn't catch")
}

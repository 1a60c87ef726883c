package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/repository"
	"github.com/alexanderramin/streakmind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_LogsBuiltinActivity(t *testing.T) {
	h := newHarness(t)

	res := h.say(t, "Did 2 coding questions today")

	assert.Equal(t, contract.KindLog, res.Kind)
	require.NotNil(t, res.LogEntry)
	assert.Equal(t, "coding", res.LogEntry.Activity)
	assert.Equal(t, 2.0, res.LogEntry.Amount)
	assert.Equal(t, domain.UnitQuestions, res.LogEntry.Unit)
	assert.Equal(t, "2025-06-15", res.LogEntry.Date)
	assert.Equal(t, 10, res.PointsAwarded)
	assert.True(t, res.StreakUpdated)
	require.NotNil(t, res.CurrentStreak)
	assert.Equal(t, 1, *res.CurrentStreak)
	assert.Equal(t, "Nice one!", res.Reply)
	assert.False(t, res.FallbackReply)

	st := h.state(t)
	require.Len(t, st.Logs, 1)
	def, ok := st.Activity("coding")
	require.True(t, ok, "logging defines the activity")
	assert.Equal(t, domain.VizHeatmap, def.VisualizationType)
	assert.Equal(t, 1, st.Streaks.Get("coding"))

	reqs := h.llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, llm.TaskReply, reqs[0].Task)
	assert.Contains(t, reqs[0].UserPrompt, "User logged: coding (2 questions). Points awarded: 10. Streak updated to 1.")
}

func TestIngest_SameDayTwiceIncrementsOnce(t *testing.T) {
	h := newHarness(t)

	first := h.say(t, "Went to gym")
	second := h.say(t, "went to the gym again, crushed it")

	assert.True(t, first.StreakUpdated)
	assert.False(t, second.StreakUpdated)
	assert.Equal(t, 1, *second.CurrentStreak)
	assert.Equal(t, 10, second.PointsAwarded)
	assert.Len(t, h.state(t).Logs, 2)
}

func TestIngest_YesterdayThenTodayCountsBoth(t *testing.T) {
	h := newHarness(t)

	y := h.say(t, "Slept 7.5 hours yesterday")
	today := h.say(t, "slept 8 hours")

	assert.Equal(t, "2025-06-14", y.LogEntry.Date)
	assert.Equal(t, 7, y.PointsAwarded)
	assert.Equal(t, 2, *today.CurrentStreak)
}

func TestIngest_GeneralQueryNeverLogs(t *testing.T) {
	h := newHarness(t)

	res := h.say(t, "What's the capital of France?")

	assert.Equal(t, contract.KindConversation, res.Kind)
	assert.Nil(t, res.LogEntry)
	assert.Nil(t, res.CurrentStreak)
	assert.Zero(t, res.PointsAwarded)
	assert.Equal(t, string(domain.PersonalityDefault), res.Personality)
	assert.Empty(t, h.state(t).Logs)

	req := h.llm.Requests()[0]
	assert.Equal(t, llm.TaskChat, req.Task)
	assert.Contains(t, req.SystemPrompt, "helpful AI assistant")
}

func TestIngest_TrackRequestCreatesActivityWithoutLogging(t *testing.T) {
	h := newHarness(t)

	res := h.say(t, "I want to track yoga")

	assert.Equal(t, contract.KindActivity, res.Kind)
	assert.Equal(t, "yoga", res.ActivityCreated)
	assert.Nil(t, res.LogEntry)

	st := h.state(t)
	assert.Empty(t, st.Logs)
	assert.True(t, st.Streaks.Has("yoga"))
	assert.Equal(t, 0, st.Streaks.Get("yoga"))
	def, ok := st.Activity("yoga")
	require.True(t, ok)
	assert.Equal(t, domain.VizPie, def.VisualizationType)

	again := h.say(t, "start tracking Yoga")
	assert.Empty(t, again.ActivityCreated)
	assert.Contains(t, again.Reply, `already tracking "yoga"`)
	assert.Equal(t, 1, h.llm.Calls(), "already-tracking reply is deterministic")
}

func TestIngest_TrackRequestForBuiltinNeverLogs(t *testing.T) {
	for _, msg := range []string{
		"Let's start tracking meditation",
		"I'd like to track reading",
		"Add coding to my daily habits",
		"Can you track gym for me?",
	} {
		t.Run(msg, func(t *testing.T) {
			h := newHarness(t)

			res := h.say(t, msg)

			assert.Equal(t, contract.KindActivity, res.Kind)
			assert.NotEmpty(t, res.ActivityCreated)
			assert.Nil(t, res.LogEntry)

			st := h.state(t)
			assert.Empty(t, st.Logs)
			_, ok := st.Activity(res.ActivityCreated)
			assert.True(t, ok)
			assert.Equal(t, 0, st.Streaks.Get(res.ActivityCreated))
		})
	}
}

func TestIngest_DynamicActivityIsThenLoggable(t *testing.T) {
	h := newHarness(t)
	h.say(t, "I want to track yoga")

	res := h.say(t, "did yoga for 30 minutes")

	require.NotNil(t, res.LogEntry)
	assert.Equal(t, "yoga", res.LogEntry.Activity)
	assert.Equal(t, domain.UnitMinutes, res.LogEntry.Unit)
	assert.Equal(t, 3, res.PointsAwarded)
	assert.Equal(t, 1, *res.CurrentStreak)
}

func TestIngest_SetPointsCommandOverridesScoring(t *testing.T) {
	h := newHarness(t)
	h.say(t, "I want to track yoga")

	cmd := h.say(t, "set yoga points to 15")
	assert.Equal(t, contract.KindCommand, cmd.Kind)
	assert.Equal(t, "setPoints", cmd.CommandAction)
	assert.Equal(t, `Set "yoga" to 15 points per session.`, cmd.Reply)

	res := h.say(t, "did yoga twice, 2 sessions")
	assert.Equal(t, 30, res.PointsAwarded)
}

func TestIngest_DeleteCommandCascades(t *testing.T) {
	h := newHarness(t)
	h.say(t, "Did 3 coding questions")
	h.say(t, "Went to gym")

	res := h.say(t, "delete coding")

	assert.Equal(t, `Deleted "coding" from your habits.`, res.Reply)
	st := h.state(t)
	assert.False(t, st.HasActivity("coding"))
	for _, e := range st.Logs {
		assert.NotEqual(t, "coding", e.Activity)
	}
	assert.Len(t, st.Logs, 1)
}

func TestIngest_CommandOnUnknownActivity(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, `Couldn't find "chess" to delete.`, h.say(t, "delete chess").Reply)
	assert.Equal(t, `Couldn't rename "chess".`, h.say(t, "rename chess to go").Reply)
	assert.Equal(t, `Couldn't set points for "chess".`, h.say(t, "set chess points to 4").Reply)
	assert.Zero(t, h.llm.Calls())
}

func TestIngest_RenameCommandMigratesHistory(t *testing.T) {
	h := newHarness(t)
	h.say(t, "Did 3 coding questions")

	res := h.say(t, "rename coding to programming")

	assert.Equal(t, `Renamed "coding" to "programming".`, res.Reply)
	st := h.state(t)
	assert.Equal(t, "programming", st.Logs[0].Activity)
	assert.Equal(t, 1, st.Streaks.Get("programming"))
	assert.False(t, st.Streaks.Has("coding"))
	assert.Equal(t, 15, st.TotalPoints())
}

func TestIngest_ParseMissFallsBackToTemplate(t *testing.T) {
	h := newHarness(t, withLLM(testutil.NewScriptedLLM(testutil.FakeStep{Err: llm.ErrUnavailable})))

	res := h.say(t, "today was weird")

	assert.Equal(t, contract.KindConversation, res.Kind)
	assert.Nil(t, res.LogEntry)
	assert.True(t, res.FallbackReply)
	assert.Contains(t, res.Reply, "didn't catch a habit")
}

func TestIngest_GenerationFailureKeepsLog(t *testing.T) {
	h := newHarness(t, withLLM(testutil.NewScriptedLLM(testutil.FakeStep{Err: llm.ErrTimeout})))

	res := h.say(t, "Did 2 coding questions")

	assert.Equal(t, "Great job! +10 points. coding streak: 1 days!", res.Reply)
	assert.True(t, res.FallbackReply)
	assert.Len(t, h.state(t).Logs, 1)
}

func TestIngest_EmptyMessage(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Tracker.Ingest(context.Background(), contract.IngestRequest{Message: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.False(t, h.obs.last().Success)
}

func TestIngest_SaveFailureIsReturned(t *testing.T) {
	boom := errors.New("disk full")
	store := repository.NewSQLiteStore(testutil.NewTestDB(t))
	store.State = &failingStateRepo{StateRepo: store.State, saveErr: boom}
	h := newHarness(t, withStore(store))

	_, err := h.svc.Tracker.Ingest(context.Background(), contract.IngestRequest{Message: "Went to gym"})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, h.llm.Calls(), "no reply before the log is durable")
	msgs, err := store.Transcript.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestIngest_UnreadableStateStartsEmpty(t *testing.T) {
	store := repository.NewSQLiteStore(testutil.NewTestDB(t))
	failing := &failingStateRepo{StateRepo: store.State, loadErr: errors.New("corrupt")}
	store.State = failing
	h := newHarness(t, withStore(store))

	res := h.say(t, "Went to gym")

	require.NotNil(t, res.LogEntry)
	assert.Equal(t, 1, *res.CurrentStreak)

	failing.loadErr = nil
	assert.Len(t, h.state(t).Logs, 1)
}

func TestIngest_RecordsTranscriptAndMemory(t *testing.T) {
	h := newHarness(t)

	h.say(t, "My name is sam. Did 2 coding questions")

	msgs, err := h.svc.Transcript.List(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "My name is sam. Did 2 coding questions", msgs[0].Message)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Nice one!", msgs[1].Message)
	assert.True(t, msgs[1].Timestamp.After(msgs[0].Timestamp))

	mem, err := h.svc.Memory.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sam", mem.Name)
	assert.Equal(t, []string{"coding"}, mem.Preferences.PreferredActivities)

	h.say(t, "went to the gym")
	assert.Contains(t, h.llm.Requests()[1].SystemPrompt, "Personal context: Name: Sam")
}

func TestIngest_DisabledPersonalityUsesDefaultPrompt(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Settings.Update(context.Background(), []byte(`{"enabledPersonalities":{"trainer":false}}`))
	require.NoError(t, err)

	res := h.say(t, "Went to gym")

	assert.Equal(t, string(domain.PersonalityDefault), res.Personality)
	assert.Contains(t, h.llm.Requests()[0].SystemPrompt, "adaptive AI companion")
}

func TestIngest_ReportsUseCase(t *testing.T) {
	h := newHarness(t)

	h.say(t, "Did 2 coding questions")

	ev := h.obs.last()
	assert.Equal(t, UseCaseIngest, ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "log", ev.Fields["kind"])
	assert.Equal(t, 10, ev.Fields["points"])
}

func TestIngest_ConcurrentMessagesAreSerialized(t *testing.T) {
	h := newHarness(t)
	const n = 8

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.svc.Tracker.Ingest(context.Background(), contract.IngestRequest{Message: "Went to gym"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st := h.state(t)
	assert.Len(t, st.Logs, n)
	assert.Equal(t, 1, st.Streaks.Get("gym"))

	msgs, err := h.svc.Transcript.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 2*n)
}

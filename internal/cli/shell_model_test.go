package cli

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enter(t *testing.T, m shellModel, line string) (shellModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm, ok := next.(shellModel)
	require.True(t, ok)
	return sm, cmd
}

func TestShellModel_IngestsPlainText(t *testing.T) {
	app := testApp(t)
	m := newShellModel(context.Background(), app)

	m, cmd := enter(t, m, "did 2 coding questions")
	require.NotNil(t, cmd)
	assert.Equal(t, modeWaiting, m.mode)
	assert.Contains(t, m.View(), "thinking")

	// Keys are ignored while a reply is pending.
	next, ignored := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ignored)
	m = next.(shellModel)

	reply, ok := cmd().(replyMsg)
	require.True(t, ok)
	require.NoError(t, reply.err)
	assert.Contains(t, reply.output, "Keep it up!")
	assert.Contains(t, reply.output, "10 pts")

	next, printCmd := m.Update(reply)
	m = next.(shellModel)
	assert.Equal(t, modePrompt, m.mode)
	assert.NotNil(t, printCmd)

	st, err := app.Tracker.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, st.TotalPoints)
}

func TestShellModel_WelcomeShowsTotals(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "say", "did 2 coding questions")

	m := newShellModel(context.Background(), app)
	assert.Contains(t, m.welcome, "10 pts")
	assert.Contains(t, m.welcome, "1 active streaks")
	assert.NotNil(t, m.Init())
}

func TestShellModel_SlashCommands(t *testing.T) {
	app := testApp(t)
	m := newShellModel(context.Background(), app)

	for _, line := range []string{"/stats", "/activities", "/logs", "/memory", "/help", "/clear", "/bogus"} {
		t.Run(line, func(t *testing.T) {
			next, cmd := enter(t, m, line)
			assert.NotNil(t, cmd)
			assert.Equal(t, modePrompt, next.mode)
			assert.False(t, next.quitting)
		})
	}
}

func TestShellModel_Quit(t *testing.T) {
	for _, line := range []string{"/quit", "exit"} {
		m := newShellModel(context.Background(), testApp(t))
		m, cmd := enter(t, m, line)
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.Contains(t, m.View(), "See you tomorrow")
	}
}

func TestShellModel_NewOpensWizardAndEscCancels(t *testing.T) {
	m := newShellModel(context.Background(), testApp(t))

	m, _ = enter(t, m, "/new")
	require.Equal(t, modeWizard, m.mode)
	require.NotNil(t, m.form)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(shellModel)
	assert.Equal(t, modePrompt, m.mode)
	assert.Nil(t, m.form)
	assert.NotNil(t, cmd)
}

func TestShellModel_CreateActivityFromDraft(t *testing.T) {
	app := testApp(t)
	m := newShellModel(context.Background(), app)

	assert.NotNil(t, m.createActivity(&activityDraft{Name: "piano", Points: "3", Viz: "bar"}))

	acts, err := app.Tracker.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "piano", acts[0].Name)
	require.NotNil(t, acts[0].CustomPointsPerUnit)
	assert.Equal(t, 3.0, *acts[0].CustomPointsPerUnit)
}

func TestShellModel_HistoryNavigation(t *testing.T) {
	app := testApp(t)
	app.HistoryPath = filepath.Join(t.TempDir(), "history")
	m := newShellModel(context.Background(), app)

	m, _ = enter(t, m, "/help")
	m, _ = enter(t, m, "/stats")

	up := func() {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(shellModel)
	}
	down := func() {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(shellModel)
	}

	up()
	assert.Equal(t, "/stats", m.input.Value())
	up()
	assert.Equal(t, "/help", m.input.Value())
	up()
	assert.Equal(t, "/help", m.input.Value())
	down()
	assert.Equal(t, "/stats", m.input.Value())
	down()
	assert.Equal(t, "", m.input.Value())

	assert.Equal(t, []string{"/help", "/stats"}, loadHistory(app.HistoryPath))
	reopened := newShellModel(context.Background(), app)
	assert.Len(t, reopened.history, 2)
}

func TestShellModel_SlashSuggestions(t *testing.T) {
	m := newShellModel(context.Background(), testApp(t))

	m.input.SetValue("/st")
	m.updateSuggestions()
	assert.Equal(t, []string{"/stats"}, m.input.AvailableSuggestions())

	m.input.SetValue("did yoga")
	m.updateSuggestions()
	assert.Empty(t, m.input.AvailableSuggestions())
}

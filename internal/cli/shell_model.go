package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal input.
	modeWizard                   // huh form is active.
	modeWaiting                  // A message is being interpreted.
)

// replyMsg carries the rendered result of one ingested message.
type replyMsg struct {
	output string
	err    error
}

var slashCommands = []string{
	"/stats", "/activities", "/logs", "/memory", "/new", "/help", "/clear", "/quit",
}

// shellModel is the bubbletea model for the chat shell. Plain text goes to
// the ingest pipeline; lines starting with "/" are shell commands.
type shellModel struct {
	input textinput.Model
	form  *huh.Form
	width int

	ctx     context.Context
	app     *App
	welcome string

	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd

	history    []string
	historyIdx int

	quitting bool
}

func newShellModel(ctx context.Context, app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "what did you do today?"
	ti.ShowSuggestions = true
	ti.CharLimit = 1000
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistory(app.HistoryPath)

	return shellModel{
		input:      ti,
		ctx:        ctx,
		app:        app,
		welcome:    shellWelcome(ctx, app),
		history:    hist,
		historyIdx: len(hist),
	}
}

func shellWelcome(ctx context.Context, app *App) string {
	st, err := app.Tracker.Stats(ctx)
	if err != nil {
		return formatter.FormatShellWelcome(0, 0)
	}
	active := 0
	for _, e := range st.Streaks.Entries() {
		if e.Count > 0 {
			active++
		}
	}
	return formatter.FormatShellWelcome(st.TotalPoints, active)
}

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(m.welcome))
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 16
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case replyMsg:
		m.mode = modePrompt
		if msg.err != nil {
			return m, tea.Println(shellError(msg.err))
		}
		return m, tea.Println(strings.TrimRight(msg.output, "\n"))

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeWaiting:
			return m, nil
		default:
			return m.updatePrompt(msg)
		}
	}

	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("See you tomorrow.") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	if m.mode == modeWaiting {
		return promptPrefix() + formatter.Dim("thinking…")
	}
	return promptPrefix() + m.input.View()
}

func promptPrefix() string {
	return formatter.StylePurple.Render("streakmind") + " " + formatter.Dim("❯") + " "
}

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)

		if strings.HasPrefix(input, "/") || input == "exit" || input == "quit" {
			return m.execSlash(input)
		}
		m.mode = modeWaiting
		return m, m.ingestCmd(input)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ingestCmd runs the pipeline off the update loop.
func (m *shellModel) ingestCmd(text string) tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		out, err := ingest(ctx, app, text)
		return replyMsg{output: out, err: err}
	}
}

func (m shellModel) execSlash(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))

	var buf bytes.Buffer
	var err error
	switch name {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit
	case "help", "?":
		return m, tea.Println(formatter.FormatShellHelp())
	case "clear":
		return m, tea.ClearScreen
	case "new":
		d := &activityDraft{}
		cmd := m.startWizard(newActivityForm(d), func(m *shellModel) tea.Cmd {
			return m.createActivity(d)
		})
		return m, cmd
	case "stats":
		err = printStats(m.ctx, m.app, &buf)
	case "activities":
		err = m.runSubcommand(&buf, "activity", "list")
	case "logs":
		err = m.runSubcommand(&buf, "log", "list", "--limit", "10")
	case "memory":
		err = m.runSubcommand(&buf, "memory")
	default:
		return m, tea.Println(shellError(fmt.Errorf("unknown command %q, try /help", fields[0])))
	}
	if err != nil {
		return m, tea.Println(shellError(err))
	}
	return m, tea.Println(strings.TrimRight(buf.String(), "\n"))
}

// runSubcommand executes a CLI subcommand and captures its output.
func (m *shellModel) runSubcommand(buf *bytes.Buffer, args ...string) error {
	root := NewRootCmd(m.app)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SetContext(m.ctx)
	return root.Execute()
}

func (m *shellModel) createActivity(d *activityDraft) tea.Cmd {
	req, err := d.request()
	if err != nil {
		return tea.Println(shellError(err))
	}
	a, err := m.app.Tracker.CreateActivity(m.ctx, req)
	if err != nil {
		return tea.Println(shellError(err))
	}
	return tea.Println(fmt.Sprintf("%s Created activity %s %s",
		formatter.StyleGreen.Render("✔"), formatter.Bold(a.Name), formatter.VizLabel(a.VisualizationType)))
}

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			return m, tea.Batch(cmd, done(&m))
		}
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}
	return m, cmd
}

func (m *shellModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistory(m.app.HistoryPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
		return
	}
	m.historyIdx = len(m.history)
	m.input.SetValue("")
}

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if !strings.HasPrefix(text, "/") || strings.Contains(text, " ") {
		m.input.SetSuggestions(nil)
		return
	}
	var out []string
	for _, c := range slashCommands {
		if strings.HasPrefix(c, strings.ToLower(text)) {
			out = append(out, c)
		}
	}
	m.input.SetSuggestions(out)
}

func shellError(err error) string {
	return formatter.StyleRed.Render("✖ " + err.Error())
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Chat with the tracker interactively",
		Long: `Open an interactive chat. Describe what you did in plain words to log it,
or use slash commands such as /stats and /new.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), app)
		},
	}
}

func runShell(ctx context.Context, app *App) error {
	p := tea.NewProgram(newShellModel(ctx, app), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

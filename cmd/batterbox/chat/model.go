// Package chat implements the interactive chat surface: a scrollback of
// question/answer turns, a single-line prompt, and a spinner while an answer
// is being produced.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"batterbox/cmd/batterbox/ui"
	"batterbox/internal/logging"
	"batterbox/internal/router"
	"batterbox/internal/table"
)

// Turn roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is one entry in the conversation scrollback.
type Turn struct {
	ID      uuid.UUID
	Role    string
	Content string
	Table   *table.Table
	Profile *table.Table
}

// replyMsg carries a finished answer back into the update loop.
type replyMsg struct {
	reply router.Reply
}

// Model is the bubbletea model for the chat session.
type Model struct {
	styles   ui.Styles
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	router  *router.Router
	history []Turn
	waiting bool
	ready   bool

	width  int
	height int
}

// New creates the chat model.
func New(rt *router.Router) Model {
	styles := ui.DefaultStyles()

	input := textinput.New()
	input.Placeholder = "예: 양의지 선수에 대해 알려줘, 구본혁 2025년 성적 요약"
	input.Prompt = styles.Prompt.Render("⚾ > ")
	input.CharLimit = 200
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logging.UI("markdown renderer unavailable: %v", err)
		renderer = nil
	}

	return Model{
		styles:   styles,
		input:    input,
		spinner:  sp,
		renderer: renderer,
		router:   rt,
	}
}

// Init starts cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			question := m.input.Value()
			if question == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.history = append(m.history, Turn{
				ID:      uuid.New(),
				Role:    RoleUser,
				Content: question,
			})
			m.waiting = true
			m.refreshViewport()
			return m, tea.Batch(m.ask(question), m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case replyMsg:
		m.waiting = false
		m.history = append(m.history, Turn{
			ID:      uuid.New(),
			Role:    RoleBot,
			Content: msg.reply.Content,
			Table:   msg.reply.Table,
			Profile: msg.reply.Profile,
		})
		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// ask produces the answer off the update loop.
func (m Model) ask(question string) tea.Cmd {
	rt := m.router
	return func() tea.Msg {
		logging.UI("question: %q", question)
		return replyMsg{reply: rt.Route(context.Background(), question)}
	}
}

func (m *Model) resize() {
	headerHeight := 2
	footerHeight := 3
	vpHeight := m.height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

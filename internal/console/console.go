package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// NewApp builds the console. style is a glamour standard style name
// ("dark", "light", "notty"); wrap is the markdown word-wrap width.
func NewApp(client *Client, style string, wrap int) (*Model, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = infoStyle

	return &Model{
		state:    StatePalette,
		client:   client,
		palette:  NewPalette(defaultCommands),
		spinner:  s,
		renderer: renderer,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) State() ViewState {
	return m.state
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+k":
			m.openPalette()
			return m, nil

		case "esc":
			if m.state == StateResult {
				m.openPalette()
				return m, nil
			}
		}

		switch m.state {
		case StatePalette:
			if msg.String() == "enter" {
				return m, m.run()
			}

			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd

		case StateResult:
			if msg.String() == "enter" {
				m.openPalette()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.input.Width = max(20, msg.Width-10)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ResultMsg:
		m.state = StateResult
		m.title = msg.Title
		m.err = nil

		out, err := m.renderer.Render(msg.Markdown)
		if err != nil {
			out = msg.Markdown
		}
		m.output = out

	case ErrorMsg:
		m.state = StateResult
		m.title = msg.Title
		m.output = ""
		m.err = msg.Err
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("solari console"))
	b.WriteString("\n")

	switch m.state {
	case StatePalette:
		b.WriteString(m.palette.View())
		b.WriteString(helpStyle.Render("↑/↓ select · enter run · ctrl+c quit"))

	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" loading " + m.title + "..."))

	case StateResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%s failed: %v", m.title, m.err)))
			b.WriteString("\n")
		} else {
			b.WriteString(m.output)
		}
		b.WriteString(helpStyle.Render("enter/esc back · ctrl+k palette · ctrl+c quit"))
	}

	return b.String()
}

func (m *Model) openPalette() {
	m.state = StatePalette
	m.err = nil
	m.palette.Reset()
}

// starts the selected command
func (m *Model) run() tea.Cmd {
	command, ok := m.palette.Selected()
	if !ok {
		return nil
	}

	args := m.palette.Args()

	var fetch tea.Cmd

	switch command.Name {
	case "quit":
		return tea.Quit

	case "access":
		fetch = m.accessCmd(dashboardPath)

	case "team":
		fetch = m.teamCmd()

	case "analytics":
		if len(args) == 0 {
			m.state = StateResult
			m.title = command.Name
			m.err = fmt.Errorf("usage: analytics <agentId>")
			return nil
		}
		fetch = m.analyticsCmd(args[0])

	default:
		return nil
	}

	m.state = StateLoading
	m.title = command.Name

	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *Model) accessCmd(path string) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		a, err := client.Access(ctx, path)
		if err != nil {
			return ErrorMsg{Title: "access", Err: err}
		}

		return ResultMsg{Title: "access", Markdown: accessMarkdown(path, a)}
	}
}

func (m *Model) teamCmd() tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		t, err := client.CurrentTeam(ctx)
		if err != nil {
			return ErrorMsg{Title: "team", Err: err}
		}

		return ResultMsg{Title: "team", Markdown: teamMarkdown(t)}
	}
}

func (m *Model) analyticsCmd(agentID string) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		a, err := client.AgentAnalytics(ctx, agentID)
		if err != nil {
			return ErrorMsg{Title: "analytics", Err: err}
		}

		return ResultMsg{Title: "analytics", Markdown: analyticsMarkdown(agentID, a)}
	}
}

package console

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var defaultCommands = []Command{
	{Name: "access", Description: "access decision for the dashboard"},
	{Name: "team", Description: "current team, billing and integrations"},
	{Name: "analytics", Description: "rating analytics for an agent", Arg: "<agentId>"},
	{Name: "quit", Description: "exit the console"},
}

func NewPalette(commands []Command) *Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle

	p := &Palette{input: ti, commands: commands}
	p.refilter()

	return p
}

// reports whether every rune of query appears in name in order, ignoring case
func Match(query, name string) bool {
	query = strings.ToLower(query)
	name = strings.ToLower(name)

	for query != "" {
		r, size := utf8.DecodeRuneInString(query)

		i := strings.IndexRune(name, r)
		if i < 0 {
			return false
		}

		_, n := utf8.DecodeRuneInString(name[i:])
		name = name[i+n:]
		query = query[size:]
	}

	return true
}

// commands matching the first word of the input
func (p *Palette) Matches() []Command {
	return p.matches
}

// the highlighted command, false when nothing matches
func (p *Palette) Selected() (Command, bool) {
	if len(p.matches) == 0 {
		return Command{}, false
	}

	return p.matches[p.selected], true
}

// words after the command name
func (p *Palette) Args() []string {
	fields := strings.Fields(p.input.Value())
	if len(fields) < 2 {
		return nil
	}

	return fields[1:]
}

func (p *Palette) Reset() {
	p.input.SetValue("")
	p.input.Focus()
	p.refilter()
}

func (p *Palette) Update(msg tea.Msg) (*Palette, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "ctrl+p":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil

		case "down", "ctrl+n":
			if p.selected < len(p.matches)-1 {
				p.selected++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.refilter()

	return p, cmd
}

func (p *Palette) refilter() {
	query := ""
	if fields := strings.Fields(p.input.Value()); len(fields) > 0 {
		query = fields[0]
	}

	p.matches = p.matches[:0]
	for _, c := range p.commands {
		if Match(query, c.Name) {
			p.matches = append(p.matches, c)
		}
	}

	if p.selected >= len(p.matches) {
		p.selected = max(0, len(p.matches)-1)
	}
}

func (p *Palette) View() string {
	var b strings.Builder

	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		b.WriteString(infoStyle.Render("  no matching commands"))
		return b.String()
	}

	for i, c := range p.matches {
		name := c.Name
		if c.Arg != "" {
			name += " " + c.Arg
		}

		style := menuItemStyle
		if i == p.selected {
			style = menuItemSelectedStyle
		}

		line := lipgloss.JoinHorizontal(lipgloss.Left,
			style.Render(fmt.Sprintf("%-20s", name)),
			commandDescStyle.Render(c.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

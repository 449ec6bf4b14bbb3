package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		query string
		name  string
		want  bool
	}{
		{"", "access", true},
		{"acc", "access", true},
		{"acs", "access", true},
		{"ACS", "access", true},
		{"anl", "analytics", true},
		{"sa", "access", false},
		{"teams", "team", false},
		{"q", "quit", true},
		{"x", "quit", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.query, tt.name))
		})
	}
}

func typeText(p *Palette, s string) *Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return p
}

func names(commands []Command) []string {
	out := make([]string, 0, len(commands))
	for _, c := range commands {
		out = append(out, c.Name)
	}

	return out
}

func TestPalette_Filter(t *testing.T) {
	p := NewPalette(defaultCommands)
	assert.Equal(t, []string{"access", "team", "analytics", "quit"}, names(p.Matches()))

	p = typeText(p, "a")
	assert.Equal(t, []string{"access", "team", "analytics"}, names(p.Matches()))

	p = typeText(p, "ny")
	assert.Equal(t, []string{"analytics"}, names(p.Matches()))

	p.Reset()
	assert.Len(t, p.Matches(), len(defaultCommands))
}

func TestPalette_Args(t *testing.T) {
	p := typeText(NewPalette(defaultCommands), "analytics agent-7")

	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "analytics", selected.Name)
	assert.Equal(t, []string{"agent-7"}, p.Args())
}

func TestPalette_Navigation(t *testing.T) {
	p := NewPalette(defaultCommands)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	selected, _ := p.Selected()
	assert.Equal(t, "access", selected.Name)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = p.Selected()
	assert.Equal(t, "analytics", selected.Name)

	for range 10 {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	selected, _ = p.Selected()
	assert.Equal(t, "quit", selected.Name)

	// narrowing the list keeps the selection in range
	p = typeText(p, "te")
	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "team", selected.Name)
}

func TestPalette_NoMatches(t *testing.T) {
	p := typeText(NewPalette(defaultCommands), "zzz")

	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Contains(t, p.View(), "no matching commands")
}

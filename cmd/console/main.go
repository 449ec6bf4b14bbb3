package main

import (
	"fmt"
	"os"

	"codeberg.org/solari/bff/internal/console"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"
)

const defaultWrap = 100

func main() {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	style, wrap := "notty", defaultWrap
	if fd := os.Stdout.Fd(); term.IsTerminal(fd) {
		style = "dark"
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			wrap = min(w-4, defaultWrap)
		}
	}

	client := console.NewClient(os.Getenv("SOLARI_API_ENDPOINT"), os.Getenv("SOLARI_TOKEN"))

	app, err := console.NewApp(client, style, wrap)
	if err != nil {
		fmt.Printf("error starting console: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running console: %v\n", err)
		os.Exit(1)
	}
}

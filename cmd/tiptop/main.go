package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mmynk/tiptop/internal/tui"
	"github.com/mmynk/tiptop/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	// The UI owns the terminal, so logs go to LOG_FILE or nowhere
	var out io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logging.SetupWithOptions(logging.Options{
		Level:   logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		Writer:  out,
		NoColor: true,
	})

	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

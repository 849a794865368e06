package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quire/internal/adapters/editor"
	"quire/internal/adapters/filesystem"
	"quire/internal/adapters/tui"
	"quire/internal/config"
)

func main() {
	root := flag.String("root", config.RootPath(), "library root to scan")
	minFiles := flag.Int("min-files", config.DefaultMinFiles, "minimum numbered files per directory to consider")
	flag.Parse()

	// Initialize adapters
	repo := filesystem.NewRepository(*root)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener, *minFiles)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

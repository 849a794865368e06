package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"quire/internal/adapters/editor"
	"quire/internal/adapters/tui/views"
	"quire/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReview ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.LibraryRepository
	editor *editor.Opener

	state   ViewState
	review  *views.ReviewModel
	confirm *views.ConfirmModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.LibraryRepository, ed *editor.Opener, minFiles int) *App {
	return &App{
		repo:    repo,
		editor:  ed,
		state:   ViewReview,
		review:  views.NewReviewModel(repo, minFiles),
		confirm: views.NewConfirmModel(repo),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.review.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.review.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetReport(msg.Report)
		return a, a.confirm.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, a.review.Reload()

	case views.RenameDoneMsg:
		a.state = ViewReview
		a.review.SetMessage(fmt.Sprintf("Renaming complete. succeeded=%d, failed=%d",
			msg.Outcome.Succeeded, msg.Outcome.Failed), msg.Outcome.Failed > 0)
		return a, a.review.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.review.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.review.View()
	}
}

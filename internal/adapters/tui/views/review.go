package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quire/internal/adapters/tui/styles"
	"quire/internal/application"
	"quire/internal/application/commands"
	"quire/internal/ports"
)

// reviewPageSize is the fallback page size before the first window
// size message arrives.
const reviewPageSize = 15

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Toggle   key.Binding
	Collapse key.Binding
	Rename   key.Binding
	CopyPath key.Binding
	Edit     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "page down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "page up"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("l", "right", "enter"),
		key.WithHelp("l/enter", "samples"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rescan"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReviewModel is the model for the sequence review view
type ReviewModel struct {
	ViewState
	repo     ports.LibraryRepository
	minFiles int
	reports  []application.SequenceReport
	pager    *Paginator
	expanded map[string]bool
	loading  bool
}

// NewReviewModel creates a new review model
func NewReviewModel(repo ports.LibraryRepository, minFiles int) *ReviewModel {
	return &ReviewModel{
		repo:     repo,
		minFiles: minFiles,
		pager:    NewPaginator(reviewPageSize),
		expanded: make(map[string]bool),
		loading:  true,
	}
}

// Init initializes the review view
func (m *ReviewModel) Init() tea.Cmd {
	return m.loadReports
}

func (m *ReviewModel) loadReports() tea.Msg {
	cmd := commands.NewScanCommand(m.repo, m.minFiles)
	reports, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return reportsLoadedMsg{reports}
}

type reportsLoadedMsg struct {
	reports []application.SequenceReport
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Leave room for the header, status message and help line
		m.pager.SetPageSize(max(5, msg.Height-9))
		return m, nil

	case reportsLoadedMsg:
		m.reports = msg.reports
		m.loading = false
		m.pager.SetTotal(len(m.reports))
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ReviewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ReviewKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, ReviewKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, ReviewKeys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, ReviewKeys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, ReviewKeys.Toggle):
			if rep := m.selectedReport(); rep != nil {
				m.expanded[rep.Dir] = !m.expanded[rep.Dir]
			}
			return m, nil

		case key.Matches(msg, ReviewKeys.Collapse):
			if rep := m.selectedReport(); rep != nil {
				m.expanded[rep.Dir] = false
			}
			return m, nil

		case key.Matches(msg, ReviewKeys.Rename):
			if rep := m.selectedReport(); rep != nil {
				report := *rep
				return m, func() tea.Msg {
					return SwitchToConfirmMsg{Report: report}
				}
			}
			return m, nil

		case key.Matches(msg, ReviewKeys.CopyPath):
			if rep := m.selectedReport(); rep != nil {
				if err := clipboard.WriteAll(rep.Dir); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", rep.Dir), false)
				}
			}
			return m, nil

		case key.Matches(msg, ReviewKeys.Edit):
			if rep := m.selectedReport(); rep != nil {
				path := rep.Dir
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, ReviewKeys.Refresh):
			return m, m.Reload()

		case key.Matches(msg, ReviewKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *ReviewModel) selectedReport() *application.SequenceReport {
	if cursor := m.pager.Cursor(); cursor < len(m.reports) {
		return &m.reports[cursor]
	}
	return nil
}

// View renders the review view
func (m *ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Quire"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Sequence review — %s", m.repo.Root())))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(styles.MutedText.Render("Scanning..."))
		b.WriteString("\n")
	case len(m.reports) == 0:
		b.WriteString(styles.MutedText.Render("No unpadded sequential numeric sequences found."))
		b.WriteString("\n")
	default:
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderReport(m.reports[i], i == m.pager.Cursor()))
		}
		if m.pager.TotalPages() > 1 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d",
				m.pager.CurrentPage(), m.pager.TotalPages())))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		ReviewKeys.Up, ReviewKeys.Down, ReviewKeys.Toggle,
		ReviewKeys.Rename, ReviewKeys.CopyPath, ReviewKeys.Edit,
		ReviewKeys.Help, ReviewKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *ReviewModel) renderReport(rep application.SequenceReport, selected bool) string {
	var b strings.Builder

	prefix := styles.TreeCollapsed
	if m.expanded[rep.Dir] {
		prefix = styles.TreeExpanded
	}

	stats := fmt.Sprintf("%d files, range %d-%d, width %d",
		rep.Count, rep.Min, rep.Max, rep.DesiredWidth)

	var styled string
	if selected {
		styled = styles.RowSelected.Render(rep.Dir + "  " + stats)
	} else {
		styled = styles.Row.Render(rep.Dir) + "  " + styles.RowStats.Render(stats)
	}

	b.WriteString(styles.TreeBranch.Render(prefix))
	b.WriteString(styled)
	b.WriteString("\n")

	if m.expanded[rep.Dir] {
		b.WriteString("    ")
		b.WriteString(styles.SampleLabel.Render("lex     :"))
		b.WriteString(" ")
		b.WriteString(styles.SampleText.Render(strings.Join(rep.LexSample, ", ")))
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(styles.SampleLabel.Render("numeric :"))
		b.WriteString(" ")
		b.WriteString(styles.SampleText.Render(strings.Join(rep.NumericSample, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

// Reload rescans the library
func (m *ReviewModel) Reload() tea.Cmd {
	m.loading = true
	m.pager.Reset()
	m.expanded = make(map[string]bool)
	return m.loadReports
}

// Messages for view switching
type SwitchToConfirmMsg struct {
	Report application.SequenceReport
}

type SwitchToHelpMsg struct{}

type SwitchToReviewMsg struct{}

// OpenEditorMsg asks the app to open path in the user's editor
type OpenEditorMsg struct {
	Path string
}

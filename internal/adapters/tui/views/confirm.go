package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quire/internal/adapters/tui/styles"
	"quire/internal/application"
	"quire/internal/application/commands"
	"quire/internal/domain"
	"quire/internal/ports"
)

// ConfirmKeyMap defines key bindings for the rename confirmation view
type ConfirmKeyMap struct {
	Confirm      key.Binding
	Cancel       key.Binding
	EditWidth    key.Binding
	ToggleForce  key.Binding
	ToggleDryRun key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	EditWidth: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "width"),
	),
	ToggleForce: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "force"),
	),
	ToggleDryRun: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dry-run"),
	),
}

// ConfirmModel is the model for the rename confirmation view
type ConfirmModel struct {
	ViewState
	repo ports.LibraryRepository

	report     application.SequenceReport
	width      int
	widthInput textinput.Model
	editing    bool
	force      bool
	dryRun     bool

	plan    *application.DirectoryPlan
	mapping application.Mapping
}

// NewConfirmModel creates a new rename confirmation model
func NewConfirmModel(repo ports.LibraryRepository) *ConfirmModel {
	input := textinput.New()
	input.Placeholder = "width"
	input.CharLimit = 3
	input.Width = 6

	return &ConfirmModel{
		repo:       repo,
		widthInput: input,
	}
}

// SetReport points the confirmation at a flagged directory and resets
// the options to their defaults.
func (m *ConfirmModel) SetReport(report application.SequenceReport) {
	m.report = report
	m.width = report.DesiredWidth
	m.editing = false
	m.force = false
	m.dryRun = false
	m.plan = nil
	m.mapping = nil
	m.widthInput.Blur()
	m.ClearMessage()
}

// Init computes the rename plan for the current report
func (m *ConfirmModel) Init() tea.Cmd {
	return m.loadPlan
}

func (m *ConfirmModel) loadPlan() tea.Msg {
	cmd := commands.NewPlanRenamesCommand(m.repo, []string{m.report.Dir}, m.width)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return planLoadedMsg{result}
}

type planLoadedMsg struct {
	result *commands.PlanResult
}

// RenameDoneMsg reports a completed rename batch
type RenameDoneMsg struct {
	Outcome *application.RenameOutcome
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case planLoadedMsg:
		if len(msg.result.Plans) > 0 {
			m.plan = &msg.result.Plans[0]
		} else {
			m.plan = nil
		}
		m.mapping = msg.result.Mapping
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}

		switch {
		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToReviewMsg{}
			}

		case key.Matches(msg, ConfirmKeys.Confirm):
			m.ClearMessage()
			return m, func() tea.Msg {
				return m.doRename()
			}

		case key.Matches(msg, ConfirmKeys.EditWidth):
			m.editing = true
			m.widthInput.SetValue(strconv.Itoa(m.width))
			m.widthInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, ConfirmKeys.ToggleForce):
			m.force = !m.force
			return m, nil

		case key.Matches(msg, ConfirmKeys.ToggleDryRun):
			m.dryRun = !m.dryRun
			return m, nil
		}
	}

	return m, nil
}

func (m *ConfirmModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.widthInput.Blur()
		return m, nil

	case "enter":
		value, err := strconv.Atoi(strings.TrimSpace(m.widthInput.Value()))
		if err != nil || value < 0 {
			m.SetMessage("width must be a non-negative number", true)
			return m, nil
		}
		m.width = value
		m.editing = false
		m.widthInput.Blur()
		m.ClearMessage()
		return m, m.loadPlan
	}

	var cmd tea.Cmd
	m.widthInput, cmd = m.widthInput.Update(msg)
	return m, cmd
}

func (m *ConfirmModel) doRename() tea.Msg {
	if len(m.mapping) == 0 {
		return errMsg{fmt.Errorf("nothing to rename")}
	}

	cmd := commands.NewExecuteRenamesCommand(m.repo, m.mapping, m.dryRun, m.force)
	outcome, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}

	if outcome.DryRun {
		return successMsg{fmt.Sprintf("Dry run: %d renames planned, nothing touched", len(m.mapping))}
	}
	return RenameDoneMsg{Outcome: outcome}
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rename Confirmation"))
	b.WriteString("\n\n")

	b.WriteString(RenderLabelValue("Directory", m.report.Dir))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %d files, range %d-%d",
		m.report.Count, m.report.Min, m.report.Max)))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(styles.InputLabel.Render("Width:"))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.widthInput.View()))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("enter to apply, esc to keep the old value"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(RenderLabelValue("Width", m.widthLabel()))
		b.WriteString("\n")
		b.WriteString(RenderLabelValue("Force", onOff(m.force)))
		b.WriteString("\n")
		b.WriteString(RenderLabelValue("Dry-run", onOff(m.dryRun)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderPlan())

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	if !m.editing {
		b.WriteString(RenderConfirmPrompt("Apply renames?"))
		b.WriteString("\n")
		b.WriteString(RenderHelpLine(
			ConfirmKeys.EditWidth, ConfirmKeys.ToggleForce, ConfirmKeys.ToggleDryRun,
		))
	}

	return styles.App.Render(b.String())
}

func (m *ConfirmModel) widthLabel() string {
	if m.plan != nil {
		return strconv.Itoa(m.plan.Width)
	}
	if m.width == 0 {
		return "derived from the largest number"
	}
	return strconv.Itoa(m.width)
}

func (m *ConfirmModel) renderPlan() string {
	if len(m.mapping) == 0 {
		return styles.MutedText.Render("No files require renaming") + "\n\n"
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Will rename %d files:", len(m.mapping))))
	b.WriteString("\n")
	for i, ren := range m.mapping {
		if i == domain.SampleLimit {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("  ... and %d more", len(m.mapping)-domain.SampleLimit)))
			b.WriteString("\n")
			break
		}
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %s -> %s",
			filepath.Base(ren.Source), filepath.Base(ren.Dest))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

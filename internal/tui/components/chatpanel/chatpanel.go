package chatpanel

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dreambook/internal/chat"
	"dreambook/internal/models"
)

// UpdateMsg signals that the session timeline changed
type UpdateMsg struct{}

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("121")).Bold(true)
	msgStyle       = lipgloss.NewStyle().PaddingLeft(3)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// quickActions are sent by pressing 1-3 while the input is empty
var quickActions = []string{
	"Show my progress",
	"Suggest a new dream",
	"Motivate me!",
}

type Model struct {
	session *chat.Session
	input   textinput.Model
	spinner spinner.Model

	profile *models.UserProfile
	dreams  []models.Dream

	width  int
	height int
}

func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask me anything... (1-3 for quick actions)"
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session: chat.NewSession(rand.New(rand.NewSource(time.Now().UnixNano()))),
		input:   ti,
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// SetContext refreshes the data snapshot handed to the responder
func (m *Model) SetContext(profile *models.UserProfile, dreams []models.Dream) {
	m.profile = profile
	m.dreams = dreams
}

// WaitForUpdate blocks on the session's update channel and converts the
// signal to a message. Re-issued after every UpdateMsg.
func (m Model) WaitForUpdate() tea.Cmd {
	updates := m.session.Updates()
	return func() tea.Msg {
		<-updates
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.WaitForUpdate())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			m.session.Send(m.input.Value(), m.profile, m.dreams)
			m.input.Reset()
			return m, nil
		}
		if m.input.Value() == "" && len(msg.Runes) == 1 {
			if n := int(msg.Runes[0] - '1'); n >= 0 && n < len(quickActions) {
				m.session.Send(quickActions[n], m.profile, m.dreams)
				return m, nil
			}
		}
	case UpdateMsg:
		return m, m.WaitForUpdate()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var b strings.Builder

	messages := m.session.Messages()
	// Show only what fits; older messages scroll off the top
	maxLines := m.height - 6
	if maxLines < 4 {
		maxLines = 4
	}
	rendered := make([]string, 0, len(messages))
	for _, msg := range messages {
		speaker := assistantStyle.Render("Assistant")
		if msg.IsUser {
			speaker = userStyle.Render("You")
		}
		rendered = append(rendered,
			fmt.Sprintf("%s %s\n%s", speaker,
				hintStyle.Render(msg.Timestamp.Format("15:04")),
				msgStyle.Render(msg.Content)))
	}
	lines := 0
	start := len(rendered)
	for start > 0 {
		next := strings.Count(rendered[start-1], "\n") + 2
		if lines+next > maxLines {
			break
		}
		lines += next
		start--
	}
	for _, r := range rendered[start:] {
		b.WriteString(r)
		b.WriteString("\n\n")
	}

	if m.session.Composing() {
		b.WriteString(m.spinner.View())
		b.WriteString(hintStyle.Render(" Assistant is typing..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("1 progress · 2 suggest · 3 motivate"))
	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
}

// Close shuts down the compose worker
func (m *Model) Close() {
	m.session.Close()
}

package insightpanel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dreambook/internal/engine"
	"dreambook/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(3)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	insights []engine.PatternInsight
	dreams   []models.Dream
}

func New(dreams []models.Dream) Model {
	m := Model{}
	m.SetDreams(dreams)
	return m
}

func (m *Model) SetDreams(dreams []models.Dream) {
	m.dreams = dreams
	m.insights = engine.Analyze(dreams)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	for _, p := range m.insights {
		title := headerStyle.Foreground(lipgloss.Color(p.Color)).Render(
			fmt.Sprintf("%s %s", p.Icon, p.Title))
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(p.Description))
		b.WriteString("\n\n")
	}

	if len(m.dreams) > 0 {
		active := models.ActiveDreams(m.dreams)
		stats := fmt.Sprintf("%d%% completion rate · %d%% average progress across %d active dreams",
			engine.CompletionRate(m.dreams),
			int(engine.AverageActiveProgress(m.dreams)*100),
			len(active))
		b.WriteString(statStyle.Render(stats))
		b.WriteString("\n")
	}

	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dreambook/internal/constants"
	"dreambook/internal/engine"
	"dreambook/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDreams:
		if m.detailDream != nil {
			content = m.viewDetail()
		} else {
			content = docStyle.Render(m.dreamList.View())
		}
	case constants.StateDiscover:
		content = docStyle.Render(m.discoverList.View())
	case constants.StateInsights:
		content = docStyle.Render(m.insights.View())
	case constants.StateChat:
		content = docStyle.Render(m.chat.View())
	case constants.StateProfile:
		content = docStyle.Render(m.viewProfile())
	case constants.StateAddDream, constants.StateOnboarding:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left,
				dangerStyle.Render("✗ "+m.formError), content)
		}
	case constants.StateConfirmation:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dreams", "Discover", "Insights", "Chat", "Profile"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDetail() string {
	d := m.detailDream
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", d.Category.Icon(), d.Title)))
	b.WriteString("\n\n")
	if d.Description != "" {
		b.WriteString(d.Description)
		b.WriteString("\n\n")
	}

	progress := int(d.Progress()*100 + 0.5)
	meta := fmt.Sprintf("%s · %s %s · priority %d · lucidity %d/5 · %d%%",
		d.Category, d.Mood.Icon(), d.Mood, d.Priority, d.Lucidity, progress)
	if d.Completed {
		meta += " · ✓ completed"
	}
	b.WriteString(subtleStyle.Render(meta))
	b.WriteString("\n\n")

	if len(d.Steps) == 0 {
		b.WriteString(subtleStyle.Render("No steps yet."))
		b.WriteString("\n")
	} else {
		for i, s := range d.Steps {
			cursor := "  "
			if i == m.detailStep {
				cursor = "> "
			}
			mark := "○"
			if s.Done {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, s.Title))
		}
	}

	if d.JournalNote != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("Journal: " + d.JournalNote))
		b.WriteString("\n")
	}

	b.WriteString("\n💡 ")
	b.WriteString(engine.GenerateInsight(d, m.profileRefView()))
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

// profileRefView mirrors profileRef for the value receiver used in views
func (m Model) profileRefView() *models.UserProfile {
	if !m.profile.OnboardingCompleted && m.profile.Name == "" {
		return nil
	}
	p := m.profile
	return &p
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.profile.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Age:       %d\n", m.profile.Age))
	b.WriteString(fmt.Sprintf("Skills:    %s\n", strings.Join(m.profile.Skills, ", ")))
	b.WriteString(fmt.Sprintf("Interests: %s\n", strings.Join(m.profile.Interests, ", ")))
	b.WriteString(fmt.Sprintf("Member since: %s\n", m.profile.CreatedAt.Format(constants.DateFormat)))

	completed := 0
	for _, d := range m.dreams {
		if d.Completed {
			completed++
		}
	}
	b.WriteString(fmt.Sprintf("\n%d dreams · %d completed\n", len(m.dreams), completed))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this dream?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

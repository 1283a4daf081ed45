package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"dreambook/internal/catalog"
	"dreambook/internal/constants"
	"dreambook/internal/models"
	"dreambook/internal/tui/components/chatpanel"
	"dreambook/internal/tui/components/discoverlist"
	"dreambook/internal/tui/components/dreamlist"
)

var errPositiveNumber = errors.New("enter a positive number")

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 6
		m.dreamList.SetSize(msg.Width-4, contentHeight)
		m.discoverList.SetSize(msg.Width-4, contentHeight)
		m.chat.SetSize(msg.Width-4, contentHeight)
	case storeEventMsg:
		m.reload()
		return m, m.waitForStoreEvent()
	case chatpanel.UpdateMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	// Form-driven states swallow everything except escape
	switch m.state {
	case constants.StateOnboarding:
		return m.updateOnboarding(msg)
	case constants.StateAddDream:
		return m.updateAddDream(msg)
	case constants.StateConfirmation:
		return m.updateConfirmation(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// The chat input owns printable keys; only control chords pass
		if m.state == constants.StateChat {
			if keyMsg.String() == "ctrl+c" {
				return m.quit()
			}
			if keyMsg.Type == tea.KeyTab {
				m.state = nextState(m.state)
				return m, nil
			}
			if keyMsg.Type == tea.KeyShiftTab {
				m.state = prevState(m.state)
				return m, nil
			}
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			// The dream list uses q for nothing, safe to quit from anywhere
			return m.quit()
		case key.Matches(keyMsg, m.keys.Tab):
			m.detailDream = nil
			m.state = nextState(m.state)
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.detailDream = nil
			m.state = prevState(m.state)
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == constants.StateDreams && m.detailDream != nil {
			return m.updateDetail(keyMsg)
		}
	}

	switch m.state {
	case constants.StateDreams:
		var cmd tea.Cmd
		m.dreamList, cmd = m.dreamList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateDiscover:
		var cmd tea.Cmd
		m.discoverList, cmd = m.discoverList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case dreamlist.AddDreamMsg:
		m.startAddDream(nil)
		return m, m.form.Init()
	case dreamlist.ShowDreamMsg:
		for i := range m.dreams {
			if m.dreams[i].ID == msg.ID {
				d := m.dreams[i]
				m.detailDream = &d
				m.detailStep = 0
				break
			}
		}
		return m, nil
	case dreamlist.DeleteDreamMsg:
		m.dreamToDeleteID = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmation
		return m, nil
	case dreamlist.CompleteDreamMsg:
		if dream, err := m.store.GetDream(msg.ID); err == nil {
			dream.Completed = true
			if err := m.store.UpdateDream(dream); err == nil {
				m.reload()
			}
		}
		return m, nil
	case discoverlist.AcceptSuggestionMsg:
		m.acceptSuggestion(msg.Title)
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.chat.Close()
	if m.cancelEvents != nil {
		m.cancelEvents()
	}
	return m, tea.Quit
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateDreams:
		return constants.StateDiscover
	case constants.StateDiscover:
		return constants.StateInsights
	case constants.StateInsights:
		return constants.StateChat
	case constants.StateChat:
		return constants.StateProfile
	case constants.StateProfile:
		return constants.StateDreams
	}
	return s
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateDreams:
		return constants.StateProfile
	case constants.StateDiscover:
		return constants.StateDreams
	case constants.StateInsights:
		return constants.StateDiscover
	case constants.StateChat:
		return constants.StateInsights
	case constants.StateProfile:
		return constants.StateChat
	}
	return s
}

// updateDetail drives the step checklist on the dream detail view
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.detailDream = nil
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.detailStep > 0 {
			m.detailStep--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.detailStep < len(m.detailDream.Steps)-1 {
			m.detailStep++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if m.detailDream.ToggleStep(m.detailStep) {
			if err := m.store.UpdateDream(*m.detailDream); err == nil {
				m.reload()
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		m.detailDream.Completed = true
		if err := m.store.UpdateDream(*m.detailDream); err == nil {
			m.reload()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		age, err := strconv.Atoi(m.onboardForm.Age)
		if err != nil || age <= 0 {
			age = constants.DefaultProfileAge
		}
		profile := models.UserProfile{
			Name:                m.onboardForm.Name,
			Age:                 age,
			Skills:              models.NormalizeTags(m.onboardForm.Skills),
			Interests:           models.NormalizeTags(m.onboardForm.Interests),
			OnboardingCompleted: true,
			CreatedAt:           time.Now(),
		}
		if err := m.store.SaveProfile(profile); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
		} else {
			m.formError = ""
			m.profile = profile
			m.reload()
			m.state = constants.StateDreams
		}
	case huh.StateAborted:
		// Onboarding cannot be skipped; restart the form
		m.startOnboarding()
		cmds = append(cmds, m.form.Init())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAddDream(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		priority, err := strconv.Atoi(m.dreamForm.Priority)
		if err != nil {
			priority = constants.DefaultPriority
		}
		lucidity, err := strconv.Atoi(m.dreamForm.Lucidity)
		if err != nil {
			lucidity = constants.DefaultLucidity
		}
		dream := models.Dream{
			ID:          uuid.New().String(),
			Title:       m.dreamForm.Title,
			Description: m.dreamForm.Description,
			Category:    m.dreamForm.Category,
			Mood:        m.dreamForm.Mood,
			Priority:    priority,
			Lucidity:    lucidity,
			CreatedAt:   time.Now(),
		}
		if err := m.store.AddDream(dream); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
		} else {
			m.formError = ""
			m.reload()
			m.state = constants.StateDreams
		}
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		if m.dreamToDeleteID != "" {
			if err := m.store.DeleteDream(m.dreamToDeleteID); err == nil {
				m.reload()
			}
			m.dreamToDeleteID = ""
		}
		m.state = m.previousState
	case "n", "N", "esc":
		m.dreamToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

// acceptSuggestion turns a catalog template into a stored dream,
// carrying over the template's steps and insight text
func (m *Model) acceptSuggestion(title string) {
	tmpl := catalog.FindByTitle(title)
	if tmpl == nil {
		return
	}
	dream := models.Dream{
		ID:          uuid.New().String(),
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Category:    tmpl.Category,
		Mood:        tmpl.Mood,
		Priority:    constants.DefaultPriority,
		Lucidity:    constants.DefaultLucidity,
		CreatedAt:   time.Now(),
		Suggested:   true,
		Insight:     tmpl.Insight,
	}
	for _, s := range tmpl.SuggestedSteps {
		dream.Steps = append(dream.Steps, models.Step{Title: s})
	}
	if err := m.store.AddDream(dream); err == nil {
		m.reload()
	}
}

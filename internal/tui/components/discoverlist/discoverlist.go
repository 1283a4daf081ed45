package discoverlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"dreambook/internal/catalog"
)

type AcceptSuggestionMsg struct {
	Title string
}

type Item struct {
	Template catalog.Template
	Score    int
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Template.Category.Icon(), i.Template.Title)
}

func (i Item) Description() string {
	return fmt.Sprintf("match %d · %s", i.Score, i.Template.Description)
}

func (i Item) FilterValue() string { return i.Template.Title }

type KeyMap struct {
	Accept key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept suggestion"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(templates []catalog.Template, scores []int, width, height int) Model {
	l := list.New(toItems(templates, scores), list.NewDefaultDelegate(), width, height)
	l.Title = "Discover"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Accept}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Accept}
	}

	return Model{list: l, keys: keys}
}

func toItems(templates []catalog.Template, scores []int) []list.Item {
	items := make([]list.Item, len(templates))
	for i, t := range templates {
		score := 0
		if i < len(scores) {
			score = scores[i]
		}
		items[i] = Item{Template: t, Score: score}
	}
	return items
}

func (m *Model) SetSuggestions(templates []catalog.Template, scores []int) {
	m.list.SetItems(toItems(templates, scores))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Accept) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AcceptSuggestionMsg{Title: i.Template.Title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No suggestions right now.\n  You've taken on everything that fits your profile!"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

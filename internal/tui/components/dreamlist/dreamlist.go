package dreamlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"dreambook/internal/models"
)

type AddDreamMsg struct{}

type ShowDreamMsg struct {
	ID string
}

type DeleteDreamMsg struct {
	ID string
}

type CompleteDreamMsg struct {
	ID string
}

type Item struct {
	Dream models.Dream
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s %s", i.Dream.Category.Icon(), i.Dream.Title)
	if i.Dream.Completed {
		title = "✓ " + title
	}
	return title
}

func (i Item) Description() string {
	progress := int(i.Dream.Progress()*100 + 0.5)
	if i.Dream.Completed {
		return "completed"
	}
	return fmt.Sprintf("%s · priority %d · %d%% · %d steps",
		i.Dream.Category, i.Dream.Priority, progress, len(i.Dream.Steps))
}

func (i Item) FilterValue() string { return i.Dream.Title }

type KeyMap struct {
	Add      key.Binding
	Show     key.Binding
	Delete   key.Binding
	Complete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Show: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(dreams []models.Dream, width, height int) Model {
	l := list.New(toItems(dreams), list.NewDefaultDelegate(), width, height)
	l.Title = "Dreams"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Show, keys.Delete, keys.Complete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Show, keys.Delete, keys.Complete}
	}

	return Model{list: l, keys: keys}
}

func toItems(dreams []models.Dream) []list.Item {
	items := make([]list.Item, len(dreams))
	for i, d := range dreams {
		items[i] = Item{Dream: d}
	}
	return items
}

func (m *Model) SetDreams(dreams []models.Dream) {
	m.list.SetItems(toItems(dreams))
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
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddDreamMsg{} }
		case key.Matches(msg, m.keys.Show):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ShowDreamMsg{ID: i.Dream.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteDreamMsg{ID: i.Dream.ID} }
			}
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.Dream.Completed {
					return m, func() tea.Msg { return CompleteDreamMsg{ID: i.Dream.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No dreams yet.\n  Press 'a' to add one, or visit Discover for suggestions."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

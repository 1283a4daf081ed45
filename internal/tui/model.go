package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dreambook/internal/catalog"
	"dreambook/internal/constants"
	"dreambook/internal/engine"
	"dreambook/internal/models"
	"dreambook/internal/storage"
	"dreambook/internal/tui/components/chatpanel"
	"dreambook/internal/tui/components/discoverlist"
	"dreambook/internal/tui/components/dreamlist"
	"dreambook/internal/tui/components/insightpanel"
)

type DreamFormModel struct {
	Title       string
	Description string
	Category    models.Category
	Mood        models.Mood
	Priority    string
	Lucidity    string
}

type OnboardFormModel struct {
	Name      string
	Age       string
	Skills    []string
	Interests []string
}

// storeEventMsg arrives whenever another writer changes the database
type storeEventMsg storage.Event

type Model struct {
	store         storage.Provider
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	profile models.UserProfile
	dreams  []models.Dream

	dreamList    dreamlist.Model
	discoverList discoverlist.Model
	insights     insightpanel.Model
	chat         chatpanel.Model

	form        *huh.Form
	dreamForm   *DreamFormModel
	onboardForm *OnboardFormModel

	// Detail view over the selected dream's steps
	detailDream *models.Dream
	detailStep  int

	dreamToDeleteID string
	formError       string
	quitting        bool
	width           int
	height          int

	events      <-chan storage.Event
	cancelEvents func()
}

func NewModel(store storage.Provider) Model {
	profile, profileErr := store.GetProfile()
	dreams, err := store.GetAllDreams()
	if err != nil {
		dreams = []models.Dream{}
	}

	events, cancel := store.Subscribe()

	m := Model{
		store:        store,
		state:        constants.StateDreams,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		profile:      profile,
		dreams:       dreams,
		dreamList:    dreamlist.New(dreams, 0, 0),
		discoverList: discoverlist.New(nil, nil, 0, 0),
		insights:     insightpanel.New(dreams),
		chat:         chatpanel.New(0, 0),
		events:       events,
		cancelEvents: cancel,
	}
	m.refreshSuggestions()
	m.chat.SetContext(m.profileRef(), dreams)

	if profileErr != nil || !profile.OnboardingCompleted {
		m.startOnboarding()
	}

	return m
}

func (m *Model) profileRef() *models.UserProfile {
	if !m.profile.OnboardingCompleted && m.profile.Name == "" {
		return nil
	}
	return &m.profile
}

// refreshSuggestions recomputes discover content from the current
// profile and dream titles
func (m *Model) refreshSuggestions() {
	titles := make([]string, 0, len(m.dreams))
	for _, d := range m.dreams {
		titles = append(titles, d.Title)
	}
	suggestions := engine.Suggest(&m.profile, titles)

	skills := m.profile.SkillSet()
	interests := m.profile.InterestSet()
	scores := make([]int, len(suggestions))
	for i := range suggestions {
		scores[i] = engine.Score(&suggestions[i], skills, interests)
	}

	m.discoverList.SetSuggestions(suggestions, scores)
}

// reload pulls fresh data from the store and pushes it into every view
func (m *Model) reload() {
	if profile, err := m.store.GetProfile(); err == nil {
		m.profile = profile
	}
	if dreams, err := m.store.GetAllDreams(); err == nil {
		m.dreams = dreams
	}
	m.dreamList.SetDreams(m.dreams)
	m.insights.SetDreams(m.dreams)
	m.refreshSuggestions()
	m.chat.SetContext(m.profileRef(), m.dreams)

	// Keep an open detail view pointed at fresh data
	if m.detailDream != nil {
		id := m.detailDream.ID
		m.detailDream = nil
		for i := range m.dreams {
			if m.dreams[i].ID == id {
				d := m.dreams[i]
				m.detailDream = &d
				break
			}
		}
		if m.detailDream == nil {
			m.detailStep = 0
		}
	}
}

func (m *Model) startOnboarding() {
	m.onboardForm = &OnboardFormModel{
		Age: strconv.Itoa(constants.DefaultProfileAge),
	}
	m.form = newOnboardForm(m.onboardForm)
	m.previousState = constants.StateDreams
	m.state = constants.StateOnboarding
}

func (m *Model) startAddDream(prefill *catalog.Template) {
	m.dreamForm = &DreamFormModel{
		Category: models.CategoryPersonalGrowth,
		Mood:     models.MoodNeutral,
		Priority: strconv.Itoa(constants.DefaultPriority),
		Lucidity: strconv.Itoa(constants.DefaultLucidity),
	}
	if prefill != nil {
		m.dreamForm.Title = prefill.Title
		m.dreamForm.Description = prefill.Description
		m.dreamForm.Category = prefill.Category
		m.dreamForm.Mood = prefill.Mood
	}
	m.form = newDreamForm(m.dreamForm)
	m.previousState = m.state
	m.state = constants.StateAddDream
}

func newDreamForm(f *DreamFormModel) *huh.Form {
	categoryOpts := make([]huh.Option[models.Category], len(models.Categories))
	for i, c := range models.Categories {
		categoryOpts[i] = huh.NewOption(string(c), c)
	}
	moodOpts := make([]huh.Option[models.Mood], len(models.Moods))
	for i, mo := range models.Moods {
		moodOpts[i] = huh.NewOption(string(mo), mo)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&f.Title).Validate(required("title")),
			huh.NewText().Title("Description").Value(&f.Description),
			huh.NewSelect[models.Category]().Title("Category").Options(categoryOpts...).Value(&f.Category),
			huh.NewSelect[models.Mood]().Title("Mood").Options(moodOpts...).Value(&f.Mood),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", "1"),
					huh.NewOption("Medium", "2"),
					huh.NewOption("High", "3"),
				).Value(&f.Priority),
			huh.NewSelect[string]().Title("Lucidity").
				Options(
					huh.NewOption("1 - hazy", "1"),
					huh.NewOption("2", "2"),
					huh.NewOption("3", "3"),
					huh.NewOption("4", "4"),
					huh.NewOption("5 - crystal clear", "5"),
				).Value(&f.Lucidity),
		),
	)
}

func newOnboardForm(f *OnboardFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("What's your name?").Value(&f.Name).Validate(required("name")),
			huh.NewInput().Title("How old are you?").Value(&f.Age).Validate(func(s string) error {
				if n, err := strconv.Atoi(s); err != nil || n <= 0 {
					return errPositiveNumber
				}
				return nil
			}),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick your skills").
				Options(huh.NewOptions(models.AvailableSkills...)...).
				Value(&f.Skills),
			huh.NewMultiSelect[string]().
				Title("Pick your interests").
				Options(huh.NewOptions(models.AvailableInterests...)...).
				Value(&f.Interests),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDreams:
		if m.detailDream != nil {
			keys = append(keys, m.keys.Toggle, m.keys.Back)
		} else {
			keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Delete)
		}
	case constants.StateDiscover:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back}

	var actions []key.Binding
	switch m.state {
	case constants.StateDreams:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Complete, m.keys.Toggle}
	case constants.StateDiscover:
		actions = []key.Binding{m.keys.Enter}
	}

	return [][]key.Binding{global, navigation, actions}
}

// waitForStoreEvent converts a storage change notification to a message
func (m Model) waitForStoreEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.chat.Init(), m.waitForStoreEvent()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

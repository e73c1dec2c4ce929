// Package ui is the people search demo screen: a title, the search box
// and the most recently chosen person.
package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autosearch/internal/config"
	"autosearch/internal/fuzzy"
	"autosearch/internal/people"
	"autosearch/internal/presenter"
	"autosearch/internal/ui/input/types"
	"autosearch/internal/ui/searchbox"
	"autosearch/internal/ui/views"
)

// searchWidth is the inner width of the entry and the results popup
const searchWidth = 48

// Model represents the UI state
type Model struct {
	config *config.Config
	search *searchbox.Model[people.Person]

	// UI-specific state
	width       int
	height      int
	help        help.Model
	keys        types.KeyMap
	styles      *views.Styles
	overlay     *views.PopupRenderer
	selected    *people.Person
	inPagerMode bool // tracks if we're currently in pager mode

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model searching source
func NewModel(cfg *config.Config, source []people.Person) (*Model, error) {
	var filter presenter.Predicate[people.Person] = people.Filter
	if cfg.Filter == config.FilterFuzzy {
		filter = fuzzy.Filter(people.Text)
	}

	keys := types.DefaultKeyMap
	search, err := searchbox.New(source, searchbox.Config{
		MaxResults:  cfg.MaxResults,
		Width:       searchWidth,
		Placeholder: "Name, occupation or birth date",
		Prompt:      "🔍 ",
		Keys:        keys,
	},
		presenter.WithFilter[people.Person](filter),
		presenter.WithRenderer(people.Person.Describe),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search box: %w", err)
	}

	styles := views.NewStyles()
	return &Model{
		config:       cfg,
		search:       search,
		help:         help.New(),
		keys:         keys,
		styles:       styles,
		overlay:      views.NewPopupRenderer(styles),
		helpRenderer: NewHelpRenderer(keys, cfg.Filter),
		helpOps:      NewHelpOps(),
	}, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.search.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchbox.ResultSelectedMsg[people.Person]:
		chosen := msg.Item
		m.selected = &chosen
		log.Printf("Selected %s", chosen.Describe())
		return m, nil

	case searchbox.QueryChangedMsg:
		log.Printf("Query changed: '%s'", msg.Query)
		return m, nil

	case searchbox.VisibilityChangedMsg:
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		return m, m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
	}

	if !m.search.Focused() {
		switch {
		case key.Matches(msg, m.keys.Quit), msg.String() == "q":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Blur), msg.String() == "/":
			return m, m.search.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return helpPagerMsg{err: errNoProgram} }
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := m.styles.Title.Render("People Search")
	entry := m.search.InputView()

	var below strings.Builder
	below.WriteString("\n")
	if m.selected != nil {
		below.WriteString("Selected: ")
		below.WriteString(m.styles.Selected.Render(m.selected.Describe()))
	} else {
		below.WriteString(m.styles.Dim.Render("Selected: nobody yet"))
	}
	below.WriteString("\n\n")
	if m.search.Focused() {
		below.WriteString(m.help.View(m.keys))
	} else {
		below.WriteString(m.styles.Help.Render("tab or / to search • F1 help • q quit"))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, title, entry, below.String())

	// Popup hangs under the entry, over whatever is below it
	top := lipgloss.Height(title) + lipgloss.Height(entry)
	return m.overlay.RenderPopupOverlay(view, m.search.PopupLines(), 0, top)
}

// Package searchbox is a Bubble Tea autocomplete search box: a text entry
// with a popup of matching results underneath. Filtering, highlighting and
// popup visibility are decided by presenter.Presenter; this package only
// maps keys to presenter calls and draws the parts.
package searchbox

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autosearch/internal/eventbus"
	"autosearch/internal/presenter"
	"autosearch/internal/ui/input"
	"autosearch/internal/ui/input/types"
	"autosearch/internal/ui/views"
)

// Config controls how the search box looks
type Config struct {
	MaxResults  int    // popup rows before it scrolls
	Width       int    // inner width of the entry and the popup
	Placeholder string
	Prompt      string
	Keys        types.KeyMap
}

// DefaultConfig returns the built-in look
func DefaultConfig() Config {
	return Config{
		MaxResults:  8,
		Width:       40,
		Placeholder: "Type to search",
		Prompt:      "🔍 ",
		Keys:        types.DefaultKeyMap,
	}
}

// Model is the search box. Use a pointer; Update mutates in place and
// returns the same model for chaining.
type Model[T any] struct {
	presenter *presenter.Presenter[T]
	input     *input.Handler
	textInput *textinput.Model

	list  *resultsList[T]
	popup *popupSurface
	focus *focusRequest

	cfg      Config
	styles   *views.Styles
	renderer *views.PopupRenderer

	// Notifications waiting to be handed to Bubble Tea, in publish order
	outbox      []tea.Msg
	unsubscribe []func()
}

// New builds a focused search box over source. Presenter options such as
// WithFilter and WithRenderer pass through; the bus is always the model's
// own, see Bus.
func New[T any](source []T, cfg Config, opts ...presenter.Option[T]) (*Model[T], error) {
	def := DefaultConfig()
	if cfg.MaxResults < 1 {
		cfg.MaxResults = def.MaxResults
	}
	if cfg.Width < 10 {
		cfg.Width = def.Width
	}
	if len(cfg.Keys.Quit.Keys()) == 0 {
		cfg.Keys = def.Keys
	}

	styles := views.NewStyles()
	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = cfg.Placeholder
	ti.Width = max(cfg.Width-lipgloss.Width(cfg.Prompt)-1, 1)

	m := &Model[T]{
		textInput: &ti,
		popup:     &popupSurface{},
		focus:     &focusRequest{},
		cfg:       cfg,
		styles:    styles,
		renderer:  views.NewPopupRenderer(styles),
	}
	m.list = &resultsList[T]{selected: -1, maxRows: cfg.MaxResults, req: m.focus}
	m.input = input.New(m.textInput, cfg.Keys)

	bus := eventbus.New()
	m.subscribe(bus)

	all := append([]presenter.Option[T]{presenter.WithSource(source)}, opts...)
	all = append(all, presenter.WithBus[T](bus))
	p, err := presenter.New(presenter.Parts[T]{
		Input:   &entry{ti: m.textInput, req: m.focus},
		Results: m.list,
		Popup:   m.popup,
	}, all...)
	if err != nil {
		m.Close()
		return nil, err
	}
	m.presenter = p
	return m, nil
}

func (m *Model[T]) subscribe(bus eventbus.EventBus) {
	m.unsubscribe = append(m.unsubscribe,
		bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
			m.outbox = append(m.outbox, QueryChangedMsg{Query: e.(eventbus.QueryChangedEvent).Query})
		}),
		bus.Subscribe(eventbus.EventResultSelected, func(e eventbus.DomainEvent) {
			if item, ok := e.(eventbus.ResultSelectedEvent).Item.(T); ok {
				m.outbox = append(m.outbox, ResultSelectedMsg[T]{Item: item})
			}
		}),
		bus.Subscribe(eventbus.EventResultsVisibilityChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ResultsVisibilityChangedEvent)
			m.outbox = append(m.outbox, VisibilityChangedMsg{Visible: ev.Visible, Count: ev.Count})
		}),
	)
}

// Close drops the model's bus subscriptions
func (m *Model[T]) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// Init starts the cursor blinking
func (m *Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys while the box is focused and forwards everything
// else to the text entry
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		actions, cmd := m.input.HandleKey(msg, m)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
	default:
		cmds = append(cmds, m.input.Update(msg))
	}

	cmds = append(cmds, m.flush())
	return m, tea.Batch(cmds...)
}

// processAction runs one input action against the presenter
func (m *Model[T]) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QueryChangedAction:
		m.presenter.OnQueryChanged(a.Text)
	case types.SubmitAction:
		m.presenter.OnSubmit()
	case types.NavigateNextAction:
		m.presenter.OnNavigateNext()
	case types.MoveSelectionAction:
		m.presenter.MoveSelection(a.Delta)
	case types.CommitAction:
		if !m.presenter.OnCommitSelected() {
			log.Printf("searchbox: commit with nothing highlighted")
		}
	case types.EscapeAction:
		m.presenter.OnEscape()
	case types.BlurAction:
		m.blur()
		return nil
	case types.QuitAction:
		return tea.Quit
	default:
		log.Printf("searchbox: unhandled action %s", action.Type())
	}
	return m.applyFocus()
}

// applyFocus moves the input mode to whatever part the presenter focused
// during the last call, then tells the presenter the old part lost focus.
func (m *Model[T]) applyFocus() tea.Cmd {
	mode, ok := m.focus.take()
	if !ok || mode == m.input.CurrentMode() {
		return nil
	}

	actions, cmd := m.input.ChangeMode(mode, m)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	m.presenter.OnLostFocus(m)
	return tea.Batch(cmds...)
}

func (m *Model[T]) blur() {
	if m.input.CurrentMode() == types.ModeBlurred {
		return
	}
	m.input.ChangeMode(types.ModeBlurred, m)
	m.presenter.OnLostFocus(m)
}

// flush hands queued notifications to Bubble Tea. They are delivered in
// the order the presenter published them.
func (m *Model[T]) flush() tea.Cmd {
	if len(m.outbox) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.outbox))
	for _, msg := range m.outbox {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.outbox = nil
	return tea.Sequence(cmds...)
}

// Focus gives the box keyboard focus with the cursor in the entry
func (m *Model[T]) Focus() tea.Cmd {
	_, cmd := m.input.ChangeMode(types.ModeQuery, m)
	return cmd
}

// Blur moves keyboard focus out of the box, which closes the popup
func (m *Model[T]) Blur() tea.Cmd {
	m.blur()
	return m.flush()
}

// Focused reports whether the box takes keys
func (m *Model[T]) Focused() bool {
	return m.input.CurrentMode() != types.ModeBlurred
}

// Mode returns the current input mode
func (m *Model[T]) Mode() types.Mode {
	return m.input.CurrentMode()
}

// SetSource swaps the items being searched and re-runs the current query
func (m *Model[T]) SetSource(items []T) tea.Cmd {
	m.presenter.SetSource(items)
	return m.flush()
}

// SetFilter swaps the match predicate; nil restores the default
func (m *Model[T]) SetFilter(filter presenter.Predicate[T]) tea.Cmd {
	m.presenter.SetFilter(filter)
	return m.flush()
}

// Presenter exposes the underlying presenter
func (m *Model[T]) Presenter() *presenter.Presenter[T] {
	return m.presenter
}

// Bus is where the presenter publishes; hosts may subscribe directly
func (m *Model[T]) Bus() eventbus.EventBus {
	return m.presenter.Bus()
}

// Query returns the current query text
func (m *Model[T]) Query() string {
	return m.presenter.Query()
}

// Keys returns the key bindings in use, for help views
func (m *Model[T]) Keys() types.KeyMap {
	return m.cfg.Keys
}

// types.Context

func (m *Model[T]) ResultCount() int {
	return len(m.list.items)
}

func (m *Model[T]) HasSelection() bool {
	return m.presenter.SelectedIndex() >= 0
}

func (m *Model[T]) ResultsVisible() bool {
	return m.popup.visible
}

// presenter.FocusProbe

func (m *Model[T]) InputFocused() bool {
	return m.input.CurrentMode() == types.ModeQuery
}

func (m *Model[T]) ResultsFocused() bool {
	return m.input.CurrentMode() == types.ModeResults
}

// View renders the entry with the popup directly below it
func (m *Model[T]) View() string {
	view := m.InputView()
	if lines := m.PopupLines(); len(lines) > 0 {
		view += "\n" + strings.Join(lines, "\n")
	}
	return view
}

// InputView renders only the entry
func (m *Model[T]) InputView() string {
	style := m.styles.InputBlur
	if m.Focused() {
		style = m.styles.Input
	}
	return style.Width(m.cfg.Width + 2).Render(m.textInput.View())
}

// PopupLines renders the results popup, or nil when it is hidden. Hosts
// that overlay it on other content use views.PopupRenderer.RenderPopupOverlay.
func (m *Model[T]) PopupLines() []string {
	if !m.popup.visible {
		return nil
	}
	rows := make([]string, len(m.list.items))
	for i, item := range m.list.items {
		rows[i] = m.presenter.Display(item)
	}
	return m.renderer.RenderResults(views.ResultsView{
		Rows:     rows,
		Selected: m.list.selected,
		Offset:   m.list.offset,
		MaxRows:  m.list.maxRows,
		Width:    m.cfg.Width,
	})
}

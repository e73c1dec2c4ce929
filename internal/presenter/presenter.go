// Package presenter holds the framework-agnostic core of the autocomplete
// search box: it maps a source collection, a query and a predicate to the
// visible result list and the highlighted result, and drives the host's
// sub-widgets through the Parts interfaces.
//
// All methods are meant to be called from the host's single UI goroutine.
// Nothing blocks and nothing runs in the background.
package presenter

import (
	"log"
	"slices"

	"autosearch/internal/eventbus"
)

// Presenter is the incremental filter presenter for items of type T
type Presenter[T any] struct {
	parts  Parts[T]
	bus    eventbus.EventBus
	filter Predicate[T]
	render func(T) string

	source   []T // borrowed, never mutated
	query    string
	results  []T
	selected int // index into results, -1 for none
	visible  bool
	focus    Focus
}

// Option configures a Presenter
type Option[T any] func(*Presenter[T])

// WithSource sets the initial source collection
func WithSource[T any](items []T) Option[T] {
	return func(p *Presenter[T]) { p.source = items }
}

// WithFilter replaces DefaultFilter
func WithFilter[T any](filter Predicate[T]) Option[T] {
	return func(p *Presenter[T]) { p.filter = filter }
}

// WithRenderer sets how an item is turned into display text
func WithRenderer[T any](render func(T) string) Option[T] {
	return func(p *Presenter[T]) { p.render = render }
}

// WithQuery sets the initial query text
func WithQuery[T any](query string) Option[T] {
	return func(p *Presenter[T]) { p.query = query }
}

// WithBus publishes notifications on an existing bus instead of a private one
func WithBus[T any](bus eventbus.EventBus) Option[T] {
	return func(p *Presenter[T]) { p.bus = bus }
}

// New wires a presenter to the host's parts. A missing part is a
// configuration error wrapping ErrMissingPart.
func New[T any](parts Parts[T], opts ...Option[T]) (*Presenter[T], error) {
	if err := parts.check(); err != nil {
		return nil, err
	}

	p := &Presenter[T]{
		parts:    parts,
		selected: -1,
		focus:    FocusInput,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bus == nil {
		p.bus = eventbus.New()
	}
	if p.filter == nil {
		p.filter = DefaultFilter[T]
	}

	// Start collapsed; the first query change decides visibility.
	p.parts.Input.SetText(p.query)
	p.results = p.apply(p.query)
	p.parts.Results.SetItems(p.Results())
	p.parts.Results.SetSelected(-1)
	p.parts.Popup.Hide()

	return p, nil
}

// Bus returns the bus notifications are published on
func (p *Presenter[T]) Bus() eventbus.EventBus {
	return p.bus
}

// OnQueryChanged recomputes the results for query. QueryChanged is
// published first, whether or not the popup ends up visible.
func (p *Presenter[T]) OnQueryChanged(query string) {
	p.bus.Publish(eventbus.QueryChangedEvent{Query: query})
	p.query = query
	p.refresh()
}

// OnNavigateNext highlights the first result and moves focus to the list.
// No-op when there are no results.
func (p *Presenter[T]) OnNavigateNext() {
	if len(p.results) == 0 {
		return
	}
	p.setVisible(true)
	p.selected = 0
	p.parts.Results.SetSelected(0)
	p.focus = FocusResults
	p.parts.Results.Focus()
}

// MoveSelection moves the highlight by delta rows, clamped to the result
// list. With nothing highlighted it selects the first row.
func (p *Presenter[T]) MoveSelection(delta int) {
	if len(p.results) == 0 {
		return
	}
	next := 0
	if p.selected >= 0 {
		next = min(max(p.selected+delta, 0), len(p.results)-1)
	}
	p.selected = next
	p.parts.Results.SetSelected(next)
}

// OnCommit announces item as the chosen result, then collapses the popup,
// clears the highlight and the query, and returns focus to the input.
// Callers make sure item came from the current results.
func (p *Presenter[T]) OnCommit(item T) {
	p.bus.Publish(eventbus.ResultSelectedEvent{Item: item})

	p.setVisible(false)
	p.clearSelection()
	p.focusInput()
	p.parts.Input.SetText("")
	p.OnQueryChanged("")
}

// OnCommitSelected commits the highlighted result. It reports false when
// nothing was highlighted.
func (p *Presenter[T]) OnCommitSelected() bool {
	item, ok := p.Selected()
	if !ok {
		return false
	}
	p.OnCommit(item)
	return true
}

// OnEscape clears the highlight, hides the popup and focuses the input.
// It behaves the same from the input box and from the results list.
func (p *Presenter[T]) OnEscape() {
	p.clearSelection()
	p.setVisible(false)
	p.focusInput()
}

// OnLostFocus collapses the popup unless focus stayed inside the control.
// A nil probe means nothing is focused.
func (p *Presenter[T]) OnLostFocus(probe FocusProbe) {
	if probe != nil && (probe.InputFocused() || probe.ResultsFocused()) {
		return
	}
	p.clearSelection()
	p.setVisible(false)
}

// OnSubmit reopens the popup when there is something to show
func (p *Presenter[T]) OnSubmit() {
	if len(p.results) > 0 {
		p.setVisible(true)
	}
}

// SetSource swaps the source collection and re-runs the current query
func (p *Presenter[T]) SetSource(items []T) {
	p.source = items
	p.bus.Publish(eventbus.SourceReplacedEvent{Size: len(items)})
	p.OnQueryChanged(p.query)
}

// SetFilter swaps the predicate; nil restores DefaultFilter
func (p *Presenter[T]) SetFilter(filter Predicate[T]) {
	if filter == nil {
		filter = DefaultFilter[T]
	}
	p.filter = filter
	p.refresh()
}

// Display returns the text shown for item
func (p *Presenter[T]) Display(item T) string {
	if p.render != nil {
		return p.render(item)
	}
	return Text(item)
}

// Query returns the current query text
func (p *Presenter[T]) Query() string {
	return p.query
}

// Results returns a copy of the current result set
func (p *Presenter[T]) Results() []T {
	return slices.Clone(p.results)
}

// Selected returns the highlighted result, if any
func (p *Presenter[T]) Selected() (T, bool) {
	if p.selected < 0 || p.selected >= len(p.results) {
		var zero T
		return zero, false
	}
	return p.results[p.selected], true
}

// SelectedIndex returns the highlighted row, or -1
func (p *Presenter[T]) SelectedIndex() int {
	return p.selected
}

// Visible reports whether the popup is shown
func (p *Presenter[T]) Visible() bool {
	return p.visible
}

// Focus returns the part that last received focus from the presenter
func (p *Presenter[T]) Focus() Focus {
	return p.focus
}

// Internal methods

func (p *Presenter[T]) refresh() {
	p.clearSelection()
	p.results = p.apply(p.query)
	p.parts.Results.SetItems(p.Results())
	p.setVisible(len(p.results) > 0)
}

func (p *Presenter[T]) apply(query string) []T {
	if query == "" {
		return nil
	}
	var out []T
	for _, item := range p.source {
		if p.filter(item, query) {
			out = append(out, item)
		}
	}
	return out
}

func (p *Presenter[T]) clearSelection() {
	p.selected = -1
	p.parts.Results.SetSelected(-1)
}

func (p *Presenter[T]) focusInput() {
	p.focus = FocusInput
	p.parts.Input.Focus()
}

func (p *Presenter[T]) setVisible(visible bool) {
	if visible {
		p.parts.Popup.Show()
	} else {
		p.parts.Popup.Hide()
	}
	if visible == p.visible {
		return
	}
	p.visible = visible
	log.Printf("Results popup visible=%v for '%s': %d results", visible, p.query, len(p.results))
	p.bus.Publish(eventbus.ResultsVisibilityChangedEvent{Visible: visible, Count: len(p.results)})
}

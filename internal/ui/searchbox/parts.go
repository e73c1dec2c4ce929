package searchbox

import (
	"github.com/charmbracelet/bubbles/textinput"

	"autosearch/internal/ui/input/types"
)

// focusRequest records which part the presenter asked to focus during a
// call. The model applies it afterwards so mode changes never run inside
// a presenter callback.
type focusRequest struct {
	mode    types.Mode
	pending bool
}

func (r *focusRequest) set(mode types.Mode) {
	r.mode = mode
	r.pending = true
}

func (r *focusRequest) take() (types.Mode, bool) {
	if !r.pending {
		return 0, false
	}
	r.pending = false
	return r.mode, true
}

// entry adapts the textinput to presenter.InputBox
type entry struct {
	ti  *textinput.Model
	req *focusRequest
}

func (e *entry) SetText(text string) {
	e.ti.SetValue(text)
	e.ti.CursorEnd()
}

func (e *entry) Focus() {
	e.req.set(types.ModeQuery)
}

// resultsList is the presenter.ResultsList the popup draws from. It keeps
// a scroll window of maxRows rows around the highlighted row.
type resultsList[T any] struct {
	items    []T
	selected int
	offset   int
	maxRows  int
	req      *focusRequest
}

func (l *resultsList[T]) SetItems(items []T) {
	l.items = items
	l.offset = 0
}

func (l *resultsList[T]) SetSelected(index int) {
	l.selected = index
	if index < 0 {
		l.offset = 0
		return
	}
	if index < l.offset {
		l.offset = index
	}
	if index >= l.offset+l.maxRows {
		l.offset = index - l.maxRows + 1
	}
}

func (l *resultsList[T]) Focus() {
	l.req.set(types.ModeResults)
}

// popupSurface only tracks visibility; View decides whether to draw it
type popupSurface struct {
	visible bool
}

func (p *popupSurface) Show() { p.visible = true }
func (p *popupSurface) Hide() { p.visible = false }

package presenter

import (
	"errors"
	"fmt"
)

// ErrMissingPart is returned by New when the host did not supply one of
// the required sub-widgets.
var ErrMissingPart = errors.New("required part is missing")

// InputBox is the text entry the user types the query into
type InputBox interface {
	// SetText replaces the visible text. It must not call back into the
	// presenter.
	SetText(text string)
	Focus()
}

// ResultsList displays the filtered items
type ResultsList[T any] interface {
	SetItems(items []T)
	// SetSelected highlights the item at index; -1 clears the highlight.
	SetSelected(index int)
	Focus()
}

// PopupSurface hosts the results list
type PopupSurface interface {
	Show()
	Hide()
}

// Parts are the sub-widgets a host supplies. All three are required.
type Parts[T any] struct {
	Input   InputBox
	Results ResultsList[T]
	Popup   PopupSurface
}

func (p Parts[T]) check() error {
	if p.Input == nil {
		return fmt.Errorf("input box: %w", ErrMissingPart)
	}
	if p.Results == nil {
		return fmt.Errorf("results list: %w", ErrMissingPart)
	}
	if p.Popup == nil {
		return fmt.Errorf("popup surface: %w", ErrMissingPart)
	}
	return nil
}

// FocusProbe reports where input focus currently is. Hosts answer from
// their own focus tracking; the presenter never walks widgets itself.
type FocusProbe interface {
	InputFocused() bool
	// ResultsFocused reports whether the list or any of its rows holds focus.
	ResultsFocused() bool
}

// Focus identifies which part the presenter last moved focus to
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusResults:
		return "results"
	default:
		return fmt.Sprintf("Focus(%d)", int(f))
	}
}

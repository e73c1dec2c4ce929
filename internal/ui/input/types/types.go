package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeQuery routes keys to the text entry
	ModeQuery Mode = iota
	// ModeResults routes keys to the results list
	ModeResults
	// ModeBlurred ignores everything; focus is outside the search box
	ModeBlurred
)

func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeResults:
		return "results"
	case ModeBlurred:
		return "blurred"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to search box state needed for input handling
type Context interface {
	ResultCount() int
	HasSelection() bool
	ResultsVisible() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

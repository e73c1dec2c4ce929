package types

// Query actions
type QueryChangedAction struct {
	Text string
}

func (a QueryChangedAction) Type() string { return "query_changed" }

type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// Navigation actions
type NavigateNextAction struct{}

func (a NavigateNextAction) Type() string { return "navigate_next" }

type MoveSelectionAction struct {
	Delta int
}

func (a MoveSelectionAction) Type() string { return "move_selection" }

// Commit and dismissal actions
type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Application actions
type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

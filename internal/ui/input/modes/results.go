package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"autosearch/internal/ui/input/types"
)

// ResultsMode is active while the results list has focus
type ResultsMode struct {
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Escape):
		return []types.Action{types.EscapeAction{}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveSelectionAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveSelectionAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Commit):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.CommitAction{}}, true
	case key.Matches(msg, m.keys.Blur):
		return []types.Action{types.BlurAction{}}, true
	}
	// The list takes no text; swallow everything else
	return nil, true
}

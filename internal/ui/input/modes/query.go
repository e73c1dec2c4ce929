package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"autosearch/internal/ui/input/types"
)

// QueryMode is active while the text entry has focus
type QueryMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewQueryMode(keys types.KeyMap, ti *textinput.Model) *QueryMode {
	return &QueryMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

// Exit blurs the entry but keeps its text; the query survives a trip
// into the results list.
func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Escape):
		return []types.Action{types.EscapeAction{}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateNextAction{}}, true
	case key.Matches(msg, m.keys.Commit):
		return []types.Action{types.SubmitAction{}}, true
	case key.Matches(msg, m.keys.Blur):
		return []types.Action{types.BlurAction{}}, true
	default:
		// Not consumed: the handler feeds it to the text input
		return nil, false
	}
}

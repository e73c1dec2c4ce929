package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosearch/internal/ui/input/types"
)

type stubContext struct {
	count     int
	selection bool
	visible   bool
}

func (c stubContext) ResultCount() int     { return c.count }
func (c stubContext) HasSelection() bool   { return c.selection }
func (c stubContext) ResultsVisible() bool { return c.visible }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newHandler() (*Handler, *textinput.Model) {
	ti := textinput.New()
	return New(&ti, types.DefaultKeyMap), &ti
}

func TestTypingEmitsQueryChanged(t *testing.T) {
	h, ti := newHandler()

	actions, _ := h.HandleKey(runes("o"), stubContext{})
	assert.Equal(t, []types.Action{types.QueryChangedAction{Text: "o"}}, actions)

	actions, _ = h.HandleKey(runes("b"), stubContext{})
	assert.Equal(t, []types.Action{types.QueryChangedAction{Text: "ob"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, stubContext{})
	assert.Equal(t, []types.Action{types.QueryChangedAction{Text: "o"}}, actions)
	assert.Equal(t, "o", ti.Value())
}

func TestCursorMovementIsNotAQueryChange(t *testing.T) {
	h, _ := newHandler()
	h.HandleKey(runes("ab"), stubContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, stubContext{})
	assert.Empty(t, actions)
}

func TestQueryModeKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, types.NavigateNextAction{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, types.SubmitAction{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, types.EscapeAction{}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.BlurAction{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ti := newHandler()
			actions, _ := h.HandleKey(tt.msg, stubContext{})
			assert.Equal(t, []types.Action{tt.want}, actions)
			assert.Empty(t, ti.Value())
		})
	}
}

func TestResultsModeKeys(t *testing.T) {
	h, _ := newHandler()
	h.ChangeMode(types.ModeResults, stubContext{})
	ctx := stubContext{count: 2, selection: true, visible: true}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.MoveSelectionAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	assert.Equal(t, []types.Action{types.MoveSelectionAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.CommitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.EscapeAction{}}, actions)
}

func TestResultsModeEnterWithoutSelection(t *testing.T) {
	h, _ := newHandler()
	h.ChangeMode(types.ModeResults, stubContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{count: 2})
	assert.Empty(t, actions)
}

func TestResultsModeSwallowsText(t *testing.T) {
	h, ti := newHandler()
	h.HandleKey(runes("o"), stubContext{})
	h.ChangeMode(types.ModeResults, stubContext{})

	actions, _ := h.HandleKey(runes("x"), stubContext{})
	assert.Empty(t, actions)
	assert.Equal(t, "o", ti.Value())
}

func TestChangeModeMovesTextFocus(t *testing.T) {
	h, ti := newHandler()
	require.True(t, ti.Focused())
	require.Equal(t, "query", h.ModeName())

	h.ChangeMode(types.ModeResults, stubContext{})
	assert.False(t, ti.Focused())
	assert.Equal(t, types.ModeResults, h.CurrentMode())

	_, cmd := h.ChangeMode(types.ModeQuery, stubContext{})
	assert.True(t, ti.Focused())
	assert.NotNil(t, cmd, "cursor blink restarts")
}

func TestBlurredModeIgnoresKeys(t *testing.T) {
	h, ti := newHandler()
	h.ChangeMode(types.ModeBlurred, stubContext{})

	actions, cmd := h.HandleKey(runes("o"), stubContext{})
	assert.Empty(t, actions)
	assert.Nil(t, cmd)
	assert.Empty(t, ti.Value())
}

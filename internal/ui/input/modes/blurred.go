package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"autosearch/internal/ui/input/types"
)

// BlurredMode ignores keys while focus is elsewhere in the host
type BlurredMode struct{}

func NewBlurredMode() *BlurredMode {
	return &BlurredMode{}
}

func (m *BlurredMode) Name() string {
	return "blurred"
}

func (m *BlurredMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return nil, false
}

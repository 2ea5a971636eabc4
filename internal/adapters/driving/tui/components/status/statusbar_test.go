package status

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Count())
	assert.False(t, bar.Spinning())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	assert.Nil(t, NewBar(nil, nil).Init())
}

func TestStatusBar_Update_IgnoresOtherMessages(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_StartLoading(t *testing.T) {
	bar := NewBar(nil, nil)

	cmd := bar.StartLoading()

	assert.NotNil(t, cmd)
	assert.Equal(t, StateLoading, bar.State())
	assert.True(t, bar.Spinning())

	// A second start does not begin another tick chain.
	assert.Nil(t, bar.StartLoading())
}

func TestStatusBar_Update_TicksWhileLoading(t *testing.T) {
	bar := NewBar(nil, nil)
	start := bar.StartLoading()
	require.NotNil(t, start)

	tick, ok := start().(spinner.TickMsg)
	require.True(t, ok)

	_, cmd := bar.Update(tick)
	assert.NotNil(t, cmd, "spinner keeps ticking while loading")
}

func TestStatusBar_Update_StopsTickingAfterLoading(t *testing.T) {
	bar := NewBar(nil, nil)
	start := bar.StartLoading()
	tick := start().(spinner.TickMsg)

	bar.SetState(StateReady)
	_, cmd := bar.Update(tick)

	assert.Nil(t, cmd)
	assert.False(t, bar.Spinning())
	assert.NotNil(t, bar.StartLoading(), "spinner restarts on next load")
}

func TestStatusBar_Indicator(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, "", bar.Indicator())

	bar.StartLoading()
	assert.Contains(t, bar.Indicator(), LoadingText)

	bar.SetState(StateEnd)
	assert.Contains(t, bar.Indicator(), EndText)
	assert.NotContains(t, bar.Indicator(), LoadingText)

	bar.SetState(StateError)
	assert.Contains(t, bar.Indicator(), EndText)
}

func TestStatusBar_IndicatorTexts(t *testing.T) {
	assert.Equal(t, "Loading more repos...", LoadingText)
	assert.Equal(t, "No more repos available.", EndText)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		state    State
		contains string
	}{
		{StateReady, "42 repos"},
		{StateLoading, "loading"},
		{StateEnd, "end of list"},
		{StateError, "load failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetCount(42)
			bar.SetState(tt.state)

			view := bar.View()

			assert.Contains(t, view, tt.contains)
			assert.Contains(t, view, "q: quit")
		})
	}
}

func TestStatusBar_View_Message(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetMessage("Copied URL")

	assert.Contains(t, bar.View(), "Copied URL")
	assert.Equal(t, "Copied URL", bar.Message())
}

func TestStatusBar_View_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	assert.NotEmpty(t, bar.View())
	assert.Equal(t, 10, bar.Width())
}

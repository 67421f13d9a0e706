package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// PlayerKeys holds the bindings that steer one board.
type PlayerKeys struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Up     key.Binding
	Rotate key.Binding
}

// KeyMap defines the in-game key bindings for both players.
type KeyMap struct {
	P1         PlayerKeys
	P2         PlayerKeys
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Left, k.P1.Right, k.P1.Down, k.P1.Rotate},
		{k.P2.Left, k.P2.Right, k.P2.Down, k.P2.Rotate},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the hot-seat layout: player 1 on WASD with space,
// player 2 on the arrows with enter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1: PlayerKeys{
			Left:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
			Right:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
			Down:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P1 drop")),
			Up:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 up")),
			Rotate: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "P1 rotate")),
		},
		P2: PlayerKeys{
			Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
			Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
			Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P2 drop")),
			Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 up")),
			Rotate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "P2 rotate")),
		},
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// mapPlayer returns the board action a key stands for, if any.
func mapPlayer(msg tea.KeyMsg, k PlayerKeys) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	}
	return core.ActionNone
}

// MapKey translates a key message to an action and the player it belongs
// to. Shared keys (pause, restart, back) are reported for Player1.
// Returns whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (id core.PlayerID, action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Player1, core.ActionQuit, true
	case key.Matches(msg, km.keys.Pause):
		return core.Player1, core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.Player1, core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.Player1, core.ActionBack, false
	}

	if a := mapPlayer(msg, km.keys.P1); a != core.ActionNone {
		return core.Player1, a, false
	}
	if a := mapPlayer(msg, km.keys.P2); a != core.ActionNone {
		return core.Player2, a, false
	}
	return 0, core.ActionNone, false
}

// MapKeyToMultiFrame appends the key's action to the owning player's frame,
// keeping press order. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	id, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Add(id, action)
	}
	return isQuit
}

// IsScreenshot reports whether the key requests a screen dump.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

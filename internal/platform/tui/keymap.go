package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// gameBindings maps keys to the actions they trigger in a running game.
// Up and W both shoot in hoops and raise the light level in the demo; each
// game ignores the action it has no use for.
var gameBindings = map[string][]core.Action{
	" ":     {core.ActionShoot},
	"w":     {core.ActionUp, core.ActionShoot},
	"up":    {core.ActionUp, core.ActionShoot},
	"s":     {core.ActionDown},
	"down":  {core.ActionDown},
	"+":     {core.ActionUp},
	"=":     {core.ActionUp},
	"-":     {core.ActionDown},
	"enter": {core.ActionConfirm},
	"b":     {core.ActionBack},
	"esc":   {core.ActionBack},
	"p":     {core.ActionPause},
	"r":     {core.ActionRestart},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions.
// Returns the actions (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	// Digits pick a level directly
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return []core.Action{core.LevelAction(int(key[0] - '0'))}, false
	}

	return gameBindings[key], false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MapMouseToFrame turns a left click into a shot.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionShoot)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

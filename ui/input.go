package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"quantum-snake/game/types"
)

// Command is a non-movement key action.
type Command int

const (
	TogglePause Command = iota
	ForceReset
	ToggleAutopilot
)

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyW, types.Up},
	{rl.KeyUp, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyDown, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyLeft, types.Left},
	{rl.KeyD, types.Right},
	{rl.KeyRight, types.Right},
}

var commandKeys = []struct {
	key int32
	cmd Command
}{
	{rl.KeyP, TogglePause},
	{rl.KeyR, ForceReset},
	{rl.KeyT, ToggleAutopilot},
}

// PollInput returns the heading keys pressed this frame in key order and any
// commands. Esc is handled by the window close check.
func PollInput() (dirs []types.Direction, cmds []Command) {
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	for _, k := range commandKeys {
		if rl.IsKeyPressed(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}
	return dirs, cmds
}

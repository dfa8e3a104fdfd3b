package ui

import (
	"errors"

	"the-snake/config"
	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib desktop backend. raylib must be driven from the main
// OS thread, see main.go.
type Window struct {
	screenWidth  int32
	screenHeight int32
	drawing      bool
}

func NewWindow(cfg config.Config) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window failed to open")
	}
	// Esc is handled as a regular quit key; the loop does its own pacing
	rl.SetExitKey(0)
	rl.SetTargetFPS(0)

	w := &Window{}
	w.UpdateDimensions()
	return w, nil
}

func (w *Window) UpdateDimensions() {
	w.screenWidth = int32(rl.GetScreenWidth())
	w.screenHeight = int32(rl.GetScreenHeight())
}

func (w *Window) Clear(color types.Color) {
	w.begin()
	rl.ClearBackground(toRaylib(color))
}

func (w *Window) DrawRect(pos types.Point, size int, fill types.Color, border *types.Color) {
	w.begin()
	x, y, s := int32(pos.X), int32(pos.Y), int32(size)
	if x >= w.screenWidth || y >= w.screenHeight {
		return
	}
	rl.DrawRectangle(x, y, s, s, toRaylib(fill))
	if border != nil {
		rl.DrawRectangleLines(x, y, s, s, toRaylib(*border))
	}
}

func (w *Window) Present() error {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
	return nil
}

// PollEvents drains raylib's key queue. Keys are collected by the previous
// EndDrawing call.
func (w *Window) PollEvents() ([]game.Event, error) {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := windowKeyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

func (w *Window) Close() error {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
	return nil
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func windowKeyEvent(key int32) (game.Event, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return game.KeyDown(types.Up), true
	case rl.KeyDown, rl.KeyS:
		return game.KeyDown(types.Down), true
	case rl.KeyLeft, rl.KeyA:
		return game.KeyDown(types.Left), true
	case rl.KeyRight, rl.KeyD:
		return game.KeyDown(types.Right), true
	case rl.KeyR:
		return game.Restart(), true
	case rl.KeyEscape, rl.KeyQ:
		return game.Quit(), true
	}
	return game.Event{}, false
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

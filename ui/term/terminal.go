package term

import (
	"fmt"

	"the-snake/config"
	"the-snake/game"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as wide, so one board cell spans
// two columns.
const cellColumns = 2

// Terminal is the tcell backend. Board cells map onto character cells; a
// bordered cell is drawn as "[]" in the border color.
type Terminal struct {
	screen tcell.Screen
	unit   int
	bg     tcell.Style
}

func NewTerminal(cfg config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalWithScreen(cfg, screen)
}

// NewTerminalWithScreen initializes the given screen and takes ownership of it
func NewTerminalWithScreen(cfg config.Config, screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetTitle(cfg.Title)

	t := &Terminal{
		screen: screen,
		unit:   cfg.GridSize,
		bg:     tcell.StyleDefault.Background(toTcell(types.BackgroundColor)),
	}
	screen.SetStyle(t.bg)
	screen.Fill(' ', t.bg)
	return t, nil
}

// Fits reports whether a board of the given size is fully visible
func (t *Terminal) Fits(grid types.Grid) bool {
	w, h := t.screen.Size()
	return grid.Columns()*cellColumns <= w && grid.Rows() <= h
}

func (t *Terminal) Clear(color types.Color) {
	t.bg = tcell.StyleDefault.Background(toTcell(color))
	t.screen.SetStyle(t.bg)
	t.screen.Fill(' ', t.bg)
}

func (t *Terminal) DrawRect(pos types.Point, size int, fill types.Color, border *types.Color) {
	col := pos.X / t.unit * cellColumns
	row := pos.Y / t.unit
	span := size / t.unit
	if span < 1 {
		span = 1
	}

	style := tcell.StyleDefault.Background(toTcell(fill))
	left, right := ' ', ' '
	if border != nil {
		style = style.Foreground(toTcell(*border))
		left, right = '[', ']'
	}

	for dy := 0; dy < span; dy++ {
		for dx := 0; dx < span*cellColumns; dx += cellColumns {
			t.screen.SetContent(col+dx, row+dy, left, nil, style)
			t.screen.SetContent(col+dx+1, row+dy, right, nil, style)
		}
	}
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// PollEvents drains whatever tcell has queued without blocking
func (t *Terminal) PollEvents() ([]game.Event, error) {
	var events []game.Event
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return append(events, game.Quit()), nil
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if e, ok := terminalKeyEvent(ev); ok {
				events = append(events, e)
			}
		}
	}
	return events, nil
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func terminalKeyEvent(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyDown(types.Up), true
	case tcell.KeyDown:
		return game.KeyDown(types.Down), true
	case tcell.KeyLeft:
		return game.KeyDown(types.Left), true
	case tcell.KeyRight:
		return game.KeyDown(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyDown(types.Up), true
		case 's', 'S':
			return game.KeyDown(types.Down), true
		case 'a', 'A':
			return game.KeyDown(types.Left), true
		case 'd', 'D':
			return game.KeyDown(types.Right), true
		case 'r', 'R':
			return game.Restart(), true
		case 'q', 'Q':
			return game.Quit(), true
		}
	}
	return game.Event{}, false
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

package game

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventRestart
)

type Event struct {
	Kind      EventKind
	Direction types.Direction // set for EventKeyDown
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func KeyDown(dir types.Direction) Event {
	return Event{Kind: EventKeyDown, Direction: dir}
}

func Restart() Event {
	return Event{Kind: EventRestart}
}

// Input is polled once per tick and must not block
type Input interface {
	PollEvents() ([]Event, error)
}

// Backend is a window or terminal the game draws into and reads keys from
type Backend interface {
	entity.Canvas
	Input
	Close() error
}

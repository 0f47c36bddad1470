// File: internal/control/loop.go
package control

import (
	"github.com/rs/zerolog/log"

	"ur_go/internal/layout"
)

type Button int

const (
	Primary Button = iota
	Secondary
	Other
)

type Kind int

const (
	Quit Kind = iota
	Release
)

// Event is one input event already translated from the toolkit.
type Event struct {
	Kind   Kind
	X, Y   int
	Button Button
}

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

type Action int

const (
	NoOp Action = iota
	AddReserve
	RemoveReserve
)

func (a Action) String() string {
	switch a {
	case AddReserve:
		return "add-reserve"
	case RemoveReserve:
		return "remove-reserve"
	default:
		return "noop"
	}
}

type Command struct {
	Side   layout.Side
	Action Action
}

// Reserves is the part of the board the loop drives.
type Reserves interface {
	AddReserve(layout.Side) error
	RemoveReserve(layout.Side) error
}

// Resolve maps a pointer release to a command: the side comes from the click
// height relative to the track, the action from the button.
func Resolve(lay *layout.Layout, y int, b Button) Command {
	cmd := Command{Side: lay.SideOf(y)}
	switch b {
	case Primary:
		cmd.Action = AddReserve
	case Secondary:
		cmd.Action = RemoveReserve
	}
	return cmd
}

// Loop is the two-state interaction machine. Every call runs to completion on
// the caller's goroutine.
type Loop struct {
	state State
	board Reserves
	lay   *layout.Layout
}

func NewLoop(b Reserves, lay *layout.Layout) *Loop {
	return &Loop{board: b, lay: lay}
}

func (l *Loop) State() State { return l.state }

// Handle processes ev and reports the command that was run. Events after a
// quit are ignored. Capacity failures are logged and otherwise dropped.
func (l *Loop) Handle(ev Event) Command {
	if l.state == Stopped {
		return Command{}
	}

	switch ev.Kind {
	case Quit:
		l.state = Stopped
		log.Info().Msg("quit requested")
		return Command{}
	case Release:
		cmd := Resolve(l.lay, ev.Y, ev.Button)
		var err error
		switch cmd.Action {
		case AddReserve:
			err = l.board.AddReserve(cmd.Side)
		case RemoveReserve:
			err = l.board.RemoveReserve(cmd.Side)
		}
		log.Debug().
			Int("x", ev.X).Int("y", ev.Y).
			Stringer("side", cmd.Side).
			Stringer("action", cmd.Action).
			AnErr("result", err).
			Msg("click")
		return cmd
	}
	return Command{}
}

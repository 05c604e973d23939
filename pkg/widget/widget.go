// Package widget is the goblin counter component: it owns a display buffer,
// applies messages to it one at a time and projects it into a ui.Node tree.
package widget

import (
	"fmt"

	"github.com/jwebster45206/fourhills/pkg/console"
	"github.com/jwebster45206/fourhills/pkg/ui"
)

const (
	goblin         = "Goblin"
	AddGoblinLabel = "Add Goblin"
)

// Msg is the closed set of messages the component accepts.
// TODO: add Increment, Decrement and Bulk variants once Bulk has an agreed
// ordering and partial-failure policy.
type Msg interface {
	isMsg()
}

// AddGoblin appends "Goblin" to the display.
type AddGoblin struct{}

func (AddGoblin) isMsg() {}

// Properties configures a new component. It carries nothing yet.
type Properties struct{}

// Model is the component state. It is driven from a single goroutine.
type Model struct {
	text    string
	console console.Sink
}

// Create mounts a fresh component with an empty display.
func Create(_ Properties, sink console.Sink) *Model {
	if sink == nil {
		sink = console.Discard
	}
	return &Model{console: sink}
}

// Update applies msg and reports whether the view needs rendering again.
func (m *Model) Update(msg Msg) bool {
	switch msg.(type) {
	case AddGoblin:
		m.text += goblin
		m.console.Log("Added goblin")
	default:
		panic(fmt.Sprintf("widget: unhandled message %T", msg))
	}
	return true
}

// View builds the render tree for the current state.
func (m *Model) View() ui.Node {
	return ui.Element("div", "",
		ui.Element("nav", "menu",
			ui.Button(AddGoblinLabel, AddGoblin{}),
		),
		ui.Element("p", "", ui.Text(m.text)),
	)
}

func (m *Model) Text() string {
	return m.text
}

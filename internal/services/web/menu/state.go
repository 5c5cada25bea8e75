package menu

import "strings"

// Entries reports which entry ids own a dropdown panel.
type Entries interface {
	HasDropdown(id string) bool
}

// State is the open dropdown, if any. The zero value is closed.
type State struct {
	Active string
	Pinned bool
}

// Closed returns the initial state.
func Closed() State {
	return State{}
}

// IsOpen reports whether any dropdown is open.
func (s State) IsOpen() bool {
	return s.Active != ""
}

// IsOpenEntry reports whether id is the open dropdown.
func (s State) IsOpenEntry(id string) bool {
	return s.Active != "" && s.Active == id
}

// Mode names the state for logs and metrics: closed, hover or pinned.
func (s State) Mode() string {
	switch {
	case !s.IsOpen():
		return "closed"
	case s.Pinned:
		return "pinned"
	default:
		return "hover"
	}
}

// EventKind is one of the pointer interactions the header reports.
type EventKind string

const (
	EventHoverEnter EventKind = "hover"
	EventHoverLeave EventKind = "leave"
	EventClick      EventKind = "click"
	EventOutside    EventKind = "outside"
)

// Event is one interaction. Entry is ignored for leave and outside events.
type Event struct {
	Kind  EventKind
	Entry string
}

// Machine applies events against a fixed entry set.
type Machine struct {
	entries Entries
}

// NewMachine returns a machine over entries.
func NewMachine(entries Entries) Machine {
	return Machine{entries: entries}
}

// Apply returns the state after event.
func (m Machine) Apply(state State, event Event) State {
	state = m.Normalize(state)
	switch event.Kind {
	case EventHoverEnter:
		return m.HoverEnter(state, event.Entry)
	case EventHoverLeave:
		return m.HoverLeave(state)
	case EventClick:
		return m.Click(state, event.Entry)
	case EventOutside:
		return m.Outside(state)
	default:
		return state
	}
}

// HoverEnter opens id unless a dropdown is pinned.
func (m Machine) HoverEnter(state State, id string) State {
	if !m.known(id) || state.Pinned {
		return state
	}
	return State{Active: id}
}

// HoverLeave closes a hover-opened dropdown. Pinned dropdowns stay open.
func (m Machine) HoverLeave(state State) State {
	if state.Pinned {
		return state
	}
	return Closed()
}

// Click pins id open, or closes it when it is already pinned.
func (m Machine) Click(state State, id string) State {
	if !m.known(id) {
		return state
	}
	if state.Pinned && state.Active == id {
		return Closed()
	}
	return State{Active: id, Pinned: true}
}

// Outside closes whatever is open.
func (m Machine) Outside(State) State {
	return Closed()
}

// Normalize drops a state whose entry is not a dropdown.
func (m Machine) Normalize(state State) State {
	state.Active = strings.TrimSpace(state.Active)
	if state.Active == "" || !m.known(state.Active) {
		return Closed()
	}
	return state
}

func (m Machine) known(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || m.entries == nil {
		return false
	}
	return m.entries.HasDropdown(id)
}

// RegionID returns the DOM id of the region that holds id's trigger and
// panel.
func RegionID(id string) string {
	return "menu-region-" + strings.TrimSpace(id)
}

// PanelID returns the DOM id of id's dropdown panel.
func PanelID(id string) string {
	return "menu-panel-" + strings.TrimSpace(id)
}

package session

import "github.com/sse-maker/linked-list/pkg/lists"

// State is the list a session operates on. Only one goroutine may use it.
type State struct {
	list *lists.List
}

func NewState() State {
	return State{
		list: lists.NewList(),
	}
}

func (s State) List() *lists.List {
	return s.list
}

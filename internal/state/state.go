// Package state holds the post board's UI state and the reducer that drives it.
//
// State is a value: Reduce never mutates its input and returns the next state
// together with the side effects the caller has to perform. Results of those
// effects are fed back in as events.
package state

import (
	"slices"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/model"
)

type Session int

const (
	Anonymous Session = iota
	Authenticated
)

func (s Session) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

type Mode int

const (
	Create Mode = iota
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

type State struct {
	Session Session
	Token   model.Token

	// Credentials bound to the auth form.
	Email    string
	Password string

	// Last snapshot returned by the service, in service order.
	Posts []model.Post

	// Editing is nil in create mode and points at a copy of the edited post
	// in update mode.
	Editing *model.Post
	Title   string
	Content string
}

func (s State) Mode() Mode {
	if s.Editing != nil {
		return Update
	}
	return Create
}

func (s State) IsAuthenticated() bool {
	return s.Session == Authenticated
}

func (s State) SubmitLabel() string {
	if s.Mode() == Update {
		return config.LabelUpdatePost
	}
	return config.LabelCreatePost
}

// clone returns a copy that shares nothing mutable with s.
func (s State) clone() State {
	c := s
	c.Posts = slices.Clone(s.Posts)
	if s.Editing != nil {
		p := *s.Editing
		c.Editing = &p
	}
	return c
}

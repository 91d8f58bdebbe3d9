package state

import "github.com/debemdeboas/postboard/internal/model"

// Effect is a side effect requested by the reducer. Call* effects map one to
// one onto the service boundary.
type Effect interface {
	isEffect()
}

type CallLogin struct {
	Email    string
	Password string
}

type CallSignup struct {
	Email    string
	Password string
}

type CallListPosts struct{}

type CallCreatePost struct {
	Title   string
	Content string
}

type CallUpdatePost struct {
	ID      model.PostID
	Title   string
	Content string
}

type CallDeletePost struct {
	ID model.PostID
}

type Notify struct {
	Notification model.Notification
}

func (CallLogin) isEffect()      {}
func (CallSignup) isEffect()     {}
func (CallListPosts) isEffect()  {}
func (CallCreatePost) isEffect() {}
func (CallUpdatePost) isEffect() {}
func (CallDeletePost) isEffect() {}
func (Notify) isEffect()         {}

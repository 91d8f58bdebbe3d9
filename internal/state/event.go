package state

import "github.com/debemdeboas/postboard/internal/model"

// Event is anything that can change the state: user input or the outcome of
// an effect.
type Event interface {
	isEvent()
}

type EmailChanged struct{ Value string }
type PasswordChanged struct{ Value string }
type TitleChanged struct{ Value string }
type ContentChanged struct{ Value string }

type LoginRequested struct{}
type LoginSucceeded struct{ Token model.Token }
type LoginFailed struct{ Err error }

type SignupRequested struct{}
type SignupSucceeded struct{}
type SignupFailed struct{ Err error }

type RefreshRequested struct{}
type PostsLoaded struct{ Posts []model.Post }
type PostsLoadFailed struct{ Err error }

type SubmitRequested struct{}
type SubmitSucceeded struct{}
type SubmitFailed struct{ Err error }

type EditRequested struct{ Post model.Post }
type EditCancelled struct{}

type DeleteRequested struct{ ID model.PostID }
type DeleteSucceeded struct{ ID model.PostID }
type DeleteFailed struct {
	ID  model.PostID
	Err error
}

func (EmailChanged) isEvent()     {}
func (PasswordChanged) isEvent()  {}
func (TitleChanged) isEvent()     {}
func (ContentChanged) isEvent()   {}
func (LoginRequested) isEvent()   {}
func (LoginSucceeded) isEvent()   {}
func (LoginFailed) isEvent()      {}
func (SignupRequested) isEvent()  {}
func (SignupSucceeded) isEvent()  {}
func (SignupFailed) isEvent()     {}
func (RefreshRequested) isEvent() {}
func (PostsLoaded) isEvent()      {}
func (PostsLoadFailed) isEvent()  {}
func (SubmitRequested) isEvent()  {}
func (SubmitSucceeded) isEvent()  {}
func (SubmitFailed) isEvent()     {}
func (EditRequested) isEvent()    {}
func (EditCancelled) isEvent()    {}
func (DeleteRequested) isEvent()  {}
func (DeleteSucceeded) isEvent()  {}
func (DeleteFailed) isEvent()     {}

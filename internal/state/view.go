package state

import (
	"slices"

	"github.com/debemdeboas/postboard/internal/model"
)

// View is what the presentation layer renders: either the auth form or the
// post form and list. Exactly one variant exists per state.
type View interface {
	isView()
}

type AnonymousView struct {
	Email    string
	Password string
}

type AuthenticatedView struct {
	Title       string
	Content     string
	Mode        Mode
	EditingID   model.PostID
	SubmitLabel string
	Posts       []model.Post
}

func (AnonymousView) isView()     {}
func (AuthenticatedView) isView() {}

func ViewOf(s State) View {
	if !s.IsAuthenticated() {
		return AnonymousView{Email: s.Email, Password: s.Password}
	}

	v := AuthenticatedView{
		Title:       s.Title,
		Content:     s.Content,
		Mode:        s.Mode(),
		SubmitLabel: s.SubmitLabel(),
		Posts:       slices.Clone(s.Posts),
	}
	if s.Editing != nil {
		v.EditingID = s.Editing.ID
	}
	return v
}

package state

import (
	"slices"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/model"
)

// Reduce applies ev to s and returns the next state and the effects to run,
// in order. Events that make no sense in the current state (post operations
// while anonymous, logging in twice) leave the state untouched.
func Reduce(s State, ev Event) (State, []Effect) {
	next := s.clone()

	switch e := ev.(type) {
	case EmailChanged:
		next.Email = e.Value
	case PasswordChanged:
		next.Password = e.Value
	case TitleChanged:
		next.Title = e.Value
	case ContentChanged:
		next.Content = e.Value

	case LoginRequested:
		if s.IsAuthenticated() {
			return s, nil
		}
		return next, []Effect{CallLogin{Email: s.Email, Password: s.Password}}
	case LoginSucceeded:
		if s.IsAuthenticated() {
			return s, nil
		}
		next.Session = Authenticated
		next.Token = e.Token
		next.Email = ""
		next.Password = ""
		return next, []Effect{
			CallListPosts{},
			Notify{Notification: success(config.MsgLoginSuccess)},
		}
	case LoginFailed:
		return next, []Effect{Notify{Notification: failure(config.MsgLoginFailed, e.Err)}}

	case SignupRequested:
		if s.IsAuthenticated() {
			return s, nil
		}
		return next, []Effect{CallSignup{Email: s.Email, Password: s.Password}}
	case SignupSucceeded:
		next.Email = ""
		next.Password = ""
		return next, []Effect{Notify{Notification: success(config.MsgSignupSuccess)}}
	case SignupFailed:
		return next, []Effect{Notify{Notification: failure(config.MsgSignupFailed, e.Err)}}

	default:
		if !s.IsAuthenticated() {
			return s, nil
		}
		return reducePosts(next, ev)
	}

	return next, nil
}

func reducePosts(next State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case RefreshRequested:
		return next, []Effect{CallListPosts{}}
	case PostsLoaded:
		next.Posts = slices.Clone(e.Posts)
	case PostsLoadFailed:
		return next, []Effect{Notify{Notification: failure(config.MsgLoadFailed, e.Err)}}

	case SubmitRequested:
		if next.Editing != nil {
			return next, []Effect{CallUpdatePost{
				ID:      next.Editing.ID,
				Title:   next.Title,
				Content: next.Content,
			}}
		}
		return next, []Effect{CallCreatePost{Title: next.Title, Content: next.Content}}
	case SubmitSucceeded:
		next.Editing = nil
		next.Title = ""
		next.Content = ""
		return next, []Effect{CallListPosts{}}
	case SubmitFailed:
		return next, []Effect{Notify{Notification: failure(config.MsgSaveFailed, e.Err)}}

	case EditRequested:
		p := e.Post
		next.Editing = &p
		next.Title = p.Title
		next.Content = p.Content
	case EditCancelled:
		next.Editing = nil
		next.Title = ""
		next.Content = ""

	case DeleteRequested:
		return next, []Effect{CallDeletePost{ID: e.ID}}
	case DeleteSucceeded:
		// The edit target is gone; an update against it could only fail.
		if next.Editing != nil && next.Editing.ID == e.ID {
			next.Editing = nil
			next.Title = ""
			next.Content = ""
		}
		return next, []Effect{CallListPosts{}}
	case DeleteFailed:
		return next, []Effect{Notify{Notification: failure(config.MsgDeleteFailed, e.Err)}}
	}

	return next, nil
}

func success(title string) model.Notification {
	return model.Notification{Status: model.StatusSuccess, Title: title}
}

func failure(title string, err error) model.Notification {
	n := model.Notification{Status: model.StatusError, Title: title}
	if err != nil {
		n.Description = err.Error()
	}
	return n
}

package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/model"
)

var fixturePosts = []model.Post{
	{ID: "1", Title: "First Post", Content: "This is the first post content."},
	{ID: "2", Title: "Second Post", Content: "This is the second post content."},
}

func authenticated() State {
	return State{
		Session: Authenticated,
		Token:   model.Token{AccessToken: "fake-access-token"},
		Posts:   fixturePosts,
	}
}

func TestReduceFieldChanges(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, EmailChanged{Value: "a@b.com"})
	s, _ = Reduce(s, PasswordChanged{Value: "pw"})
	s, _ = Reduce(s, TitleChanged{Value: "Title"})
	s, effects := Reduce(s, ContentChanged{Value: "Body"})

	if s.Email != "a@b.com" || s.Password != "pw" {
		t.Errorf("Expected credentials to be bound, got %q/%q", s.Email, s.Password)
	}
	if s.Title != "Title" || s.Content != "Body" {
		t.Errorf("Expected draft to be bound, got %q/%q", s.Title, s.Content)
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects from field changes, got %v", effects)
	}
}

func TestReduceLogin(t *testing.T) {
	anon := State{Email: "a@b.com", Password: "pw"}

	t.Run("request calls service with current credentials", func(t *testing.T) {
		next, effects := Reduce(anon, LoginRequested{})
		want := []Effect{CallLogin{Email: "a@b.com", Password: "pw"}}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("Expected %v, got %v", want, effects)
		}
		if next.IsAuthenticated() {
			t.Error("Expected session to stay anonymous until the call succeeds")
		}
	})

	t.Run("success authenticates and clears credentials", func(t *testing.T) {
		token := model.Token{AccessToken: "fake-access-token"}
		next, effects := Reduce(anon, LoginSucceeded{Token: token})

		if next.Session != Authenticated {
			t.Errorf("Expected authenticated session, got %v", next.Session)
		}
		if next.Email != "" || next.Password != "" {
			t.Errorf("Expected credentials to be cleared, got %q/%q", next.Email, next.Password)
		}
		if next.Token != token {
			t.Errorf("Expected token %v, got %v", token, next.Token)
		}

		want := []Effect{
			CallListPosts{},
			Notify{Notification: model.Notification{Status: model.StatusSuccess, Title: config.MsgLoginSuccess}},
		}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("Expected %v, got %v", want, effects)
		}
	})

	t.Run("failure notifies and keeps credentials", func(t *testing.T) {
		next, effects := Reduce(anon, LoginFailed{Err: errors.New("invalid credentials")})

		if next.IsAuthenticated() {
			t.Error("Expected session to stay anonymous")
		}
		if next.Email != "a@b.com" || next.Password != "pw" {
			t.Errorf("Expected credentials to be retained, got %q/%q", next.Email, next.Password)
		}

		want := []Effect{Notify{Notification: model.Notification{
			Status:      model.StatusError,
			Title:       config.MsgLoginFailed,
			Description: "invalid credentials",
		}}}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("Expected %v, got %v", want, effects)
		}
	})

	t.Run("ignored once authenticated", func(t *testing.T) {
		s := authenticated()
		next, effects := Reduce(s, LoginRequested{})
		if len(effects) != 0 {
			t.Errorf("Expected no effects, got %v", effects)
		}
		if !reflect.DeepEqual(next, s) {
			t.Error("Expected state to be unchanged")
		}
	})
}

func TestReduceSignup(t *testing.T) {
	anon := State{Email: "a@b.com", Password: "pw"}

	next, effects := Reduce(anon, SignupRequested{})
	if want := []Effect{CallSignup{Email: "a@b.com", Password: "pw"}}; !reflect.DeepEqual(effects, want) {
		t.Errorf("Expected %v, got %v", want, effects)
	}

	next, effects = Reduce(next, SignupSucceeded{})
	if next.Email != "" || next.Password != "" {
		t.Errorf("Expected credentials to be cleared, got %q/%q", next.Email, next.Password)
	}
	if next.IsAuthenticated() {
		t.Error("Expected signup not to change the session")
	}
	if len(effects) != 1 || effects[0].(Notify).Notification.Title != config.MsgSignupSuccess {
		t.Errorf("Expected signup success toast, got %v", effects)
	}

	failed, effects := Reduce(anon, SignupFailed{Err: errors.New("email taken")})
	if failed.Email != "a@b.com" {
		t.Errorf("Expected email to be retained after failure, got %q", failed.Email)
	}
	n := effects[0].(Notify).Notification
	if n.Title != config.MsgSignupFailed || n.Description != "email taken" || !n.IsError() {
		t.Errorf("Unexpected failure toast %+v", n)
	}
}

func TestReducePostEventsRequireSession(t *testing.T) {
	events := []Event{
		RefreshRequested{},
		PostsLoaded{Posts: fixturePosts},
		SubmitRequested{},
		SubmitSucceeded{},
		EditRequested{Post: fixturePosts[0]},
		EditCancelled{},
		DeleteRequested{ID: "1"},
		DeleteSucceeded{ID: "1"},
	}

	anon := State{Title: "t"}
	for _, ev := range events {
		next, effects := Reduce(anon, ev)
		if len(effects) != 0 {
			t.Errorf("%T: expected no effects while anonymous, got %v", ev, effects)
		}
		if !reflect.DeepEqual(next, anon) {
			t.Errorf("%T: expected state to be unchanged while anonymous", ev)
		}
	}
}

func TestReduceBeginEdit(t *testing.T) {
	s := authenticated()
	target := fixturePosts[1]

	next, effects := Reduce(s, EditRequested{Post: target})
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
	if next.Mode() != Update {
		t.Fatalf("Expected update mode, got %v", next.Mode())
	}
	if next.Editing.ID != target.ID {
		t.Errorf("Expected editing %q, got %q", target.ID, next.Editing.ID)
	}
	if next.Title != target.Title || next.Content != target.Content {
		t.Errorf("Expected draft %q/%q, got %q/%q", target.Title, target.Content, next.Title, next.Content)
	}
	if next.SubmitLabel() != config.LabelUpdatePost {
		t.Errorf("Expected label %q, got %q", config.LabelUpdatePost, next.SubmitLabel())
	}
	if s.Editing != nil {
		t.Error("Expected the input state not to be modified")
	}
}

func TestReduceSubmit(t *testing.T) {
	t.Run("update mode", func(t *testing.T) {
		s, _ := Reduce(authenticated(), EditRequested{Post: fixturePosts[0]})
		s, _ = Reduce(s, TitleChanged{Value: "Edited"})

		s, effects := Reduce(s, SubmitRequested{})
		want := []Effect{CallUpdatePost{ID: "1", Title: "Edited", Content: fixturePosts[0].Content}}
		if !reflect.DeepEqual(effects, want) {
			t.Fatalf("Expected %v, got %v", want, effects)
		}

		s, effects = Reduce(s, SubmitSucceeded{})
		if s.Mode() != Create {
			t.Errorf("Expected create mode after submit, got %v", s.Mode())
		}
		if s.Title != "" || s.Content != "" {
			t.Errorf("Expected draft to be cleared, got %q/%q", s.Title, s.Content)
		}
		if !reflect.DeepEqual(effects, []Effect{CallListPosts{}}) {
			t.Errorf("Expected a single refresh, got %v", effects)
		}
	})

	t.Run("create mode", func(t *testing.T) {
		s, _ := Reduce(authenticated(), TitleChanged{Value: "New"})
		s, _ = Reduce(s, ContentChanged{Value: "Body"})

		_, effects := Reduce(s, SubmitRequested{})
		if len(effects) != 1 {
			t.Fatalf("Expected one effect, got %v", effects)
		}
		create, ok := effects[0].(CallCreatePost)
		if !ok {
			t.Fatalf("Expected CallCreatePost, got %T", effects[0])
		}
		if create != (CallCreatePost{Title: "New", Content: "Body"}) {
			t.Errorf("Unexpected create call %+v", create)
		}
	})

	t.Run("failure keeps draft and mode", func(t *testing.T) {
		s, _ := Reduce(authenticated(), EditRequested{Post: fixturePosts[0]})
		next, effects := Reduce(s, SubmitFailed{Err: errors.New("boom")})

		if next.Mode() != Update || next.Title != fixturePosts[0].Title {
			t.Error("Expected draft and mode to survive a failed submit")
		}
		n := effects[0].(Notify).Notification
		if n.Title != config.MsgSaveFailed || n.Description != "boom" {
			t.Errorf("Unexpected toast %+v", n)
		}
	})
}

func TestReduceCancelEdit(t *testing.T) {
	s, _ := Reduce(authenticated(), EditRequested{Post: fixturePosts[0]})
	s, effects := Reduce(s, EditCancelled{})

	if s.Mode() != Create || s.Title != "" || s.Content != "" {
		t.Errorf("Expected empty create draft, got mode=%v %q/%q", s.Mode(), s.Title, s.Content)
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

func TestReduceDelete(t *testing.T) {
	s := authenticated()

	_, effects := Reduce(s, DeleteRequested{ID: "2"})
	if !reflect.DeepEqual(effects, []Effect{CallDeletePost{ID: "2"}}) {
		t.Errorf("Unexpected effects %v", effects)
	}

	_, effects = Reduce(s, DeleteSucceeded{ID: "2"})
	if !reflect.DeepEqual(effects, []Effect{CallListPosts{}}) {
		t.Errorf("Expected exactly one refresh, got %v", effects)
	}

	t.Run("deleting the edited post leaves update mode", func(t *testing.T) {
		editing, _ := Reduce(s, EditRequested{Post: fixturePosts[1]})
		next, _ := Reduce(editing, DeleteSucceeded{ID: "2"})
		if next.Mode() != Create || next.Title != "" {
			t.Error("Expected create mode with an empty draft")
		}
	})

	t.Run("deleting another post keeps update mode", func(t *testing.T) {
		editing, _ := Reduce(s, EditRequested{Post: fixturePosts[0]})
		next, _ := Reduce(editing, DeleteSucceeded{ID: "2"})
		if next.Mode() != Update || next.Editing.ID != "1" {
			t.Error("Expected update mode on post 1 to survive")
		}
	})

	t.Run("failure notifies", func(t *testing.T) {
		next, effects := Reduce(s, DeleteFailed{ID: "2", Err: errors.New("gone")})
		if !reflect.DeepEqual(next.Posts, s.Posts) {
			t.Error("Expected snapshot to be unchanged")
		}
		if n := effects[0].(Notify).Notification; n.Title != config.MsgDeleteFailed {
			t.Errorf("Unexpected toast %+v", n)
		}
	})
}

func TestReducePostsLoaded(t *testing.T) {
	s := State{Session: Authenticated}
	loaded := []model.Post{fixturePosts[1], fixturePosts[0]}

	next, _ := Reduce(s, PostsLoaded{Posts: loaded})
	if !reflect.DeepEqual(next.Posts, loaded) {
		t.Errorf("Expected snapshot in service order, got %v", next.Posts)
	}

	loaded[0].Title = "mutated"
	if next.Posts[0].Title == "mutated" {
		t.Error("Expected state to own its snapshot")
	}

	kept, effects := Reduce(next, PostsLoadFailed{Err: errors.New("offline")})
	if len(kept.Posts) != 2 {
		t.Errorf("Expected last snapshot to be kept, got %d posts", len(kept.Posts))
	}
	if n := effects[0].(Notify).Notification; n.Title != config.MsgLoadFailed || n.Description != "offline" {
		t.Errorf("Unexpected toast %+v", n)
	}
}

func TestViewOf(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		v := ViewOf(State{Email: "a@b.com", Password: "pw"})
		anon, ok := v.(AnonymousView)
		if !ok {
			t.Fatalf("Expected AnonymousView, got %T", v)
		}
		if anon.Email != "a@b.com" || anon.Password != "pw" {
			t.Errorf("Unexpected view %+v", anon)
		}
	})

	t.Run("authenticated create", func(t *testing.T) {
		v, ok := ViewOf(authenticated()).(AuthenticatedView)
		if !ok {
			t.Fatal("Expected AuthenticatedView")
		}
		if v.Mode != Create || v.SubmitLabel != config.LabelCreatePost || v.EditingID != "" {
			t.Errorf("Unexpected view %+v", v)
		}
		if len(v.Posts) != 2 {
			t.Errorf("Expected 2 posts, got %d", len(v.Posts))
		}
	})

	t.Run("authenticated update", func(t *testing.T) {
		s, _ := Reduce(authenticated(), EditRequested{Post: fixturePosts[0]})
		v := ViewOf(s).(AuthenticatedView)
		if v.Mode != Update || v.EditingID != "1" || v.SubmitLabel != config.LabelUpdatePost {
			t.Errorf("Unexpected view %+v", v)
		}
	})
}

// Package controller runs the post board state machine against a service.
//
// A Controller owns one user's UI state. Every operation feeds events through
// state.Reduce and executes the resulting effects in order, feeding their
// outcomes back in until nothing is left to do. Operations do not overlap: a
// call made while another is in flight fails with ErrBusy.
package controller

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/service"
	"github.com/debemdeboas/postboard/internal/state"
	"github.com/rs/zerolog"
)

type Notifier interface {
	Notify(n model.Notification)
}

type NotifierFunc func(n model.Notification)

func (f NotifierFunc) Notify(n model.Notification) {
	f(n)
}

var ctrlLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	ctrlLogger = l
}

type Controller struct {
	svc      service.Service
	notifier Notifier

	mu sync.RWMutex
	st state.State

	busy atomic.Bool
}

func New(svc service.Service, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(model.Notification) {})
	}
	return &Controller{
		svc:      svc,
		notifier: notifier,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() state.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.st
}

func (c *Controller) View() state.View {
	return state.ViewOf(c.State())
}

func (c *Controller) SetEmail(v string) {
	c.apply(state.EmailChanged{Value: v})
}

func (c *Controller) SetPassword(v string) {
	c.apply(state.PasswordChanged{Value: v})
}

func (c *Controller) SetTitle(v string) {
	c.apply(state.TitleChanged{Value: v})
}

func (c *Controller) SetContent(v string) {
	c.apply(state.ContentChanged{Value: v})
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.do(ctx, false, func(s state.State) ([]state.Event, error) {
		if s.IsAuthenticated() {
			return nil, ErrAlreadyAuthenticated
		}
		return []state.Event{
			state.EmailChanged{Value: email},
			state.PasswordChanged{Value: password},
			state.LoginRequested{},
		}, nil
	})
}

func (c *Controller) Signup(ctx context.Context, email, password string) error {
	return c.do(ctx, false, func(s state.State) ([]state.Event, error) {
		if s.IsAuthenticated() {
			return nil, ErrAlreadyAuthenticated
		}
		return []state.Event{
			state.EmailChanged{Value: email},
			state.PasswordChanged{Value: password},
			state.SignupRequested{},
		}, nil
	})
}

func (c *Controller) RefreshPosts(ctx context.Context) error {
	return c.do(ctx, true, events(state.RefreshRequested{}))
}

// SubmitDraft creates or updates a post from the draft, depending on the
// mode, and reloads the list.
func (c *Controller) SubmitDraft(ctx context.Context) error {
	return c.do(ctx, true, events(state.SubmitRequested{}))
}

// SubmitForm sets the draft from a submitted form and submits it. The fields
// are only applied once the busy guard has been taken, so a rejected request
// leaves the in-flight draft alone.
func (c *Controller) SubmitForm(ctx context.Context, title, content string) error {
	return c.do(ctx, true, events(
		state.TitleChanged{Value: title},
		state.ContentChanged{Value: content},
		state.SubmitRequested{},
	))
}

func (c *Controller) BeginEdit(post model.Post) error {
	return c.do(context.Background(), true, events(state.EditRequested{Post: post}))
}

// BeginEditByID enters update mode for a post of the current snapshot.
func (c *Controller) BeginEditByID(id model.PostID) error {
	return c.do(context.Background(), true, func(s state.State) ([]state.Event, error) {
		post, ok := model.FindPost(s.Posts, id)
		if !ok {
			return nil, ErrUnknownPost
		}
		return []state.Event{state.EditRequested{Post: post}}, nil
	})
}

func (c *Controller) CancelEdit() error {
	return c.do(context.Background(), true, events(state.EditCancelled{}))
}

func (c *Controller) DeletePost(ctx context.Context, id model.PostID) error {
	return c.do(ctx, true, events(state.DeleteRequested{ID: id}))
}

func events(evs ...state.Event) func(state.State) ([]state.Event, error) {
	return func(state.State) ([]state.Event, error) {
		return evs, nil
	}
}

func (c *Controller) do(ctx context.Context, requireAuth bool, plan func(state.State) ([]state.Event, error)) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	s := c.State()
	if requireAuth && !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	evs, err := plan(s)
	if err != nil {
		return err
	}
	return c.dispatch(ctx, evs...)
}

// apply reduces a single input event. Input events never produce effects.
func (c *Controller) apply(ev state.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st, _ = state.Reduce(c.st, ev)
}

// dispatch reduces events breadth first, running each batch of effects in
// the order the reducer returned them. It returns the first post operation
// failure, after all follow-up events have been applied.
func (c *Controller) dispatch(ctx context.Context, evs ...state.Event) error {
	queue := evs
	var firstErr error

	for len(queue) > 0 {
		ev := queue[0]
		queue = queue[1:]

		c.mu.Lock()
		next, effects := state.Reduce(c.st, ev)
		c.st = next
		c.mu.Unlock()

		for _, eff := range effects {
			result, err := c.run(ctx, eff)
			if result != nil {
				queue = append(queue, result)
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (c *Controller) run(ctx context.Context, eff state.Effect) (state.Event, error) {
	switch e := eff.(type) {
	case state.CallLogin:
		token, err := c.svc.Login(ctx, e.Email, e.Password)
		if err == nil && token.IsZero() {
			err = ErrEmptyToken
		}
		if err != nil {
			ctrlLogger.Warn().Err(err).Str("email", e.Email).Msg("Login failed")
			return state.LoginFailed{Err: err}, nil
		}
		ctrlLogger.Info().Str("email", e.Email).Msg("Logged in")
		return state.LoginSucceeded{Token: token}, nil

	case state.CallSignup:
		if err := c.svc.Signup(ctx, e.Email, e.Password); err != nil {
			ctrlLogger.Warn().Err(err).Str("email", e.Email).Msg("Signup failed")
			return state.SignupFailed{Err: err}, nil
		}
		ctrlLogger.Info().Str("email", e.Email).Msg("Signed up")
		return state.SignupSucceeded{}, nil

	case state.CallListPosts:
		posts, err := c.svc.ListPosts(ctx)
		if err != nil {
			return state.PostsLoadFailed{Err: err}, c.fail(OpList, "", err)
		}
		ctrlLogger.Debug().Int("count", len(posts)).Msg("Posts loaded")
		return state.PostsLoaded{Posts: posts}, nil

	case state.CallCreatePost:
		if err := c.svc.CreatePost(ctx, e.Title, e.Content); err != nil {
			return state.SubmitFailed{Err: err}, c.fail(OpCreate, "", err)
		}
		return state.SubmitSucceeded{}, nil

	case state.CallUpdatePost:
		if err := c.svc.UpdatePost(ctx, e.ID, e.Title, e.Content); err != nil {
			return state.SubmitFailed{Err: err}, c.fail(OpUpdate, e.ID, err)
		}
		return state.SubmitSucceeded{}, nil

	case state.CallDeletePost:
		if err := c.svc.DeletePost(ctx, e.ID); err != nil {
			return state.DeleteFailed{ID: e.ID, Err: err}, c.fail(OpDelete, e.ID, err)
		}
		return state.DeleteSucceeded{ID: e.ID}, nil

	case state.Notify:
		c.notifier.Notify(e.Notification)
	}

	return nil, nil
}

func (c *Controller) fail(op Op, id model.PostID, err error) error {
	opErr := &OpError{Op: op, ID: id, Err: err}
	ctrlLogger.Error().Err(err).Str("op", string(op)).Str("post_id", string(id)).Msg("Post operation failed")
	return opErr
}

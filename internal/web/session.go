package web

import (
	"context"
	"net/http"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/controller"
	"github.com/debemdeboas/postboard/internal/notify"
	"github.com/google/uuid"
)

// session is one browser's board: its controller and the toasts waiting for
// the next page render.
type session struct {
	id     string
	ctrl   *controller.Controller
	toasts *notify.Queue
}

func (s *Server) newSession() *session {
	id := uuid.NewString()
	toasts := notify.NewQueue(config.Current().Session.MaxToasts)

	return &session{
		id: id,
		ctrl: controller.New(s.svc, notify.Multi{
			toasts,
			s.clients.Notifier(id),
			notify.Log{Logger: webLogger.With().Str("session", id).Logger()},
		}),
		toasts: toasts,
	}
}

func (s *Server) lookupSession(r *http.Request) (*session, bool) {
	cookie, err := r.Cookie(config.Current().Session.CookieName)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(cookie.Value)
}

// session returns the request's session, starting a new one when the cookie
// is missing or unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if sess, ok := s.lookupSession(r); ok {
		return sess
	}

	sess := s.newSession()
	s.sessions.Set(sess.id, sess)
	webLogger.Info().Str("session", sess.id).Msg("Started session")

	http.SetCookie(w, &http.Cookie{
		Name:     config.Current().Session.CookieName,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

type contextKey string

const contextKeySession contextKey = "session"

func contextWithSession(ctx context.Context, sess *session) context.Context {
	return context.WithValue(ctx, contextKeySession, sess)
}

func sessionFromContext(ctx context.Context) (*session, bool) {
	sess, ok := ctx.Value(contextKeySession).(*session)
	return sess, ok
}

// withSession attaches the browser's session to the request context,
// starting one if needed. Only state-changing routes use it.
func (s *Server) withSession(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.session(w, r)
		h(w, r.WithContext(contextWithSession(r.Context(), sess)))
	}
}

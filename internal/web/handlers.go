package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/controller"
	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/render"
	"github.com/debemdeboas/postboard/internal/routes"
	"github.com/debemdeboas/postboard/internal/state"
	"github.com/debemdeboas/postboard/internal/theme"
	"github.com/debemdeboas/postboard/internal/util"
)

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	// Browsing never starts a session; the first action does.
	view := state.ViewOf(state.State{})
	var toasts []model.Notification
	if sess, ok := s.lookupSession(r); ok {
		view = sess.ctrl.View()
		toasts = sess.toasts.Drain()
	}

	page := render.NewPage(view, toasts, render.PageOptions{
		Theme:       theme.GetThemeFromRequest(r),
		SyntaxTheme: theme.GetSyntaxThemeFromRequest(r),
		Renderer:    config.Current().Render.Markdown,
	})

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, config.TemplateLayout, page); err != nil {
		webLogger.Error().Err(err).Msg("Failed to render index")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeHTML)
	w.Write(buf.Bytes())
}

type actionFunc func(r *http.Request, sess *session) error

// action runs one controller operation and sends the browser back to the
// index. Post operation failures have already been shown as a toast, so they
// redirect like a success.
func (s *Server) action(fn actionFunc) http.HandlerFunc {
	return s.withSession(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromContext(r.Context())
		if !ok {
			http.Error(w, config.ErrSessionRequired, http.StatusInternalServerError)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := fn(r, sess); err != nil && respondError(w, err) {
			return
		}

		http.Redirect(w, r, routes.RootPath, http.StatusSeeOther)
	})
}

// respondError writes an error response for err and reports whether it did.
func respondError(w http.ResponseWriter, err error) bool {
	var opErr *controller.OpError

	switch {
	case errors.As(err, &opErr):
		webLogger.Warn().Err(err).Msg("Post operation failed")
		return false
	case errors.Is(err, controller.ErrAlreadyAuthenticated):
		return false
	case errors.Is(err, controller.ErrBusy):
		http.Error(w, config.ErrBusy, http.StatusConflict)
	case errors.Is(err, controller.ErrNotAuthenticated):
		http.Error(w, config.ErrLoginRequired, http.StatusUnauthorized)
	case errors.Is(err, controller.ErrUnknownPost):
		http.Error(w, config.ErrUnknownPost, http.StatusNotFound)
	default:
		webLogger.Error().Err(err).Msg("Unexpected controller error")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
	}
	return true
}

func login(r *http.Request, sess *session) error {
	return sess.ctrl.Login(r.Context(), r.PostFormValue(config.FieldEmail), r.PostFormValue(config.FieldPassword))
}

func signup(r *http.Request, sess *session) error {
	return sess.ctrl.Signup(r.Context(), r.PostFormValue(config.FieldEmail), r.PostFormValue(config.FieldPassword))
}

func submitDraft(r *http.Request, sess *session) error {
	return sess.ctrl.SubmitForm(r.Context(), r.PostFormValue(config.FieldTitle), r.PostFormValue(config.FieldContent))
}

func refreshPosts(r *http.Request, sess *session) error {
	return sess.ctrl.RefreshPosts(r.Context())
}

func beginEdit(r *http.Request, sess *session) error {
	return sess.ctrl.BeginEditByID(model.PostID(r.PathValue("id")))
}

func cancelEdit(_ *http.Request, sess *session) error {
	return sess.ctrl.CancelEdit()
}

func deletePost(r *http.Request, sess *session) error {
	return sess.ctrl.DeletePost(r.Context(), model.PostID(r.PathValue("id")))
}

func serveRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(config.HCType, "text/plain; charset=utf-8")
	fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
}

func serveThemeToggle(w http.ResponseWriter, r *http.Request) {
	if !config.Current().Theme.AllowSwitching {
		http.Error(w, "Theme switching is disabled", http.StatusForbidden)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.CookieTheme,
		Value:    theme.Toggle(theme.GetThemeFromRequest(r)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, routes.RootPath, http.StatusSeeOther)
}

func serveSyntaxTheme(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("theme")
	if !theme.IsSyntaxTheme(name) {
		http.NotFound(w, r)
		return
	}

	themeStyle := []byte(theme.GenerateSyntaxCSS(name))
	w.Header().Set(config.HCType, config.CTypeCSS)
	w.Header().Set(config.HETag, util.ContentHash(themeStyle))
	w.WriteHeader(http.StatusOK)
	w.Write(themeStyle)
}

package render

import (
	"html/template"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/state"
	"github.com/debemdeboas/postboard/internal/theme"
)

// Page is the data handed to the index template.
type Page struct {
	SiteName            string
	Tagline             string
	Theme               string
	ThemeIcon           string
	SyntaxTheme         string
	AllowThemeSwitching bool
	Toasts              []model.Notification

	// Exactly one of these is set.
	Auth  *AuthForm
	Board *Board
}

type AuthForm struct {
	Email    string
	Password string
}

type Board struct {
	Title       string
	Content     string
	Editing     bool
	EditingID   model.PostID
	SubmitLabel string
	Preview     template.HTML
	Cards       []PostCard
}

type PostCard struct {
	ID      model.PostID
	Title   string
	Body    template.HTML
	Editing bool
}

type PageOptions struct {
	Theme       string
	SyntaxTheme string
	Renderer    string
}

// NewPage builds the template data for a view and the toasts drained for
// this response.
func NewPage(v state.View, toasts []model.Notification, opts PageOptions) Page {
	cfg := config.Current()

	p := Page{
		SiteName:            cfg.Site.Name,
		Tagline:             cfg.Site.Tagline,
		Theme:               opts.Theme,
		ThemeIcon:           theme.GetThemeIcon(opts.Theme),
		SyntaxTheme:         opts.SyntaxTheme,
		AllowThemeSwitching: cfg.Theme.AllowSwitching,
		Toasts:              toasts,
	}

	switch v := v.(type) {
	case state.AnonymousView:
		p.Auth = &AuthForm{Email: v.Email, Password: v.Password}
	case state.AuthenticatedView:
		p.Board = newBoard(v, opts)
	}

	return p
}

func newBoard(v state.AuthenticatedView, opts PageOptions) *Board {
	b := &Board{
		Title:       v.Title,
		Content:     v.Content,
		Editing:     v.Mode == state.Update,
		EditingID:   v.EditingID,
		SubmitLabel: v.SubmitLabel,
		Cards:       make([]PostCard, 0, len(v.Posts)),
	}

	if v.Content != "" && opts.Renderer != "" && opts.Renderer != config.RendererPlain {
		if preview, err := HighlightMarkdown(v.Content, opts.SyntaxTheme); err == nil {
			b.Preview = template.HTML(preview)
		} else {
			renderLogger.Warn().Err(err).Msg("Failed to highlight draft")
		}
	}

	for _, post := range v.Posts {
		b.Cards = append(b.Cards, PostCard{
			ID:      post.ID,
			Title:   post.Title,
			Body:    ContentCached(post.Content, opts.Renderer, opts.SyntaxTheme),
			Editing: b.Editing && post.ID == v.EditingID,
		})
	}

	return b
}

// Package web serves the post board in a browser. Each browser session gets
// its own controller; every form post runs one controller operation and
// redirects back to the index page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/debemdeboas/postboard/internal/cache"
	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/routes"
	"github.com/debemdeboas/postboard/internal/service"
	"github.com/debemdeboas/postboard/internal/sse"
	"github.com/debemdeboas/postboard/internal/util"
	"github.com/rs/zerolog"
)

//go:embed static/* templates/*
var content embed.FS

var webLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	webLogger = l
}

type Server struct {
	svc      service.Service
	sessions *cache.Cache[string, *session]
	clients  *sse.SSEClients
	tmpl     *template.Template
	static   fs.FS
}

func NewServer(svc service.Service) (*Server, error) {
	tmpl, err := template.ParseFS(content,
		config.TemplatesLocalDir+"/"+config.TemplateLayout,
		config.TemplatesLocalDir+"/"+config.TemplateIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrParseTemplates, err)
	}

	static, err := fs.Sub(content, config.StaticLocalDir)
	if err != nil {
		return nil, err
	}

	// Hash static content for ETags
	err = fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		cache.SetStaticHash(config.StaticUrlPath+path, util.ContentHash(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		svc:      svc,
		sessions: cache.NewCache[string, *session](),
		clients:  sse.NewSSEClients(),
		tmpl:     tmpl,
		static:   static,
	}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle(routes.Pattern(http.MethodGet, config.StaticUrlPath),
		http.StripPrefix(config.StaticUrlPath, http.FileServer(http.FS(s.static))))
	mux.HandleFunc(routes.Pattern(http.MethodGet, routes.RobotsPath), serveRobots)
	mux.HandleFunc(routes.Pattern(http.MethodGet, routes.SyntaxThemeGet), serveSyntaxTheme)
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.ThemeToggle), serveThemeToggle)
	mux.HandleFunc(routes.Pattern(http.MethodGet, routes.EventsPath), s.serveEvents)
	mux.HandleFunc(routes.Pattern(http.MethodGet, routes.RootPath+"{$}"), s.serveIndex)

	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.AuthLogin), s.action(login))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.AuthSignup), s.action(signup))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.Posts), s.action(submitDraft))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.PostsRefresh), s.action(refreshPosts))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.PostEdit), s.action(beginEdit))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.PostEditCancel), s.action(cancelEdit))
	mux.HandleFunc(routes.Pattern(http.MethodPost, routes.PostDelete), s.action(deletePost))

	return logRequests(secureHeaders(cacheIt(mux.ServeHTTP)))
}

// Close disconnects every event stream so the HTTP server can shut down.
func (s *Server) Close() {
	s.clients.CloseAll()
}

func cacheIt(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(config.HCacheControl, "no-cache")
		w.Header().Set("Vary", "Cookie")

		if hash, ok := cache.GetStaticHash(r.URL.Path); ok {
			w.Header().Set(config.HCacheControl, "public, max-age=3600")
			w.Header().Set(config.HETag, hash)
		}

		h(w, r)
	}
}

func secureHeaders(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "same-origin")

		h(w, r)
	}
}

func logRequests(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		webLogger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

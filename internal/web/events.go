package web

import (
	"fmt"
	"net/http"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/sse"
)

// serveEvents streams the session's toasts to an open page.
func (s *Server) serveEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(r)
	if !ok {
		http.Error(w, config.ErrSessionRequired, http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeEvent)
	w.Header().Set(config.HCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Del("X-Content-Type-Options")

	client := sse.NewClient(sess.id)
	s.clients.Add(client)
	webLogger.Debug().Str("session", sess.id).Msg("SSE client connected")

	defer func() {
		s.clients.Delete(client)
		webLogger.Debug().Str("session", sess.id).Msg("SSE client disconnected")
	}()

	fmt.Fprint(w, "event: connected\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case msg, ok := <-client.Msg:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: toast\ndata: %s\n\n", msg)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

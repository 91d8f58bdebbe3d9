// Package render turns post content and controller views into HTML pages and
// terminal text.
package render

import (
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/debemdeboas/postboard/internal/cache"
	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/util"
	"github.com/rs/zerolog"
)

var renderLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	renderLogger = l
}

// Content renders a post body with the named renderer. Plain content is
// escaped and shown verbatim; classic and mmark are parsed as markdown with
// chroma highlighting for fenced code.
func Content(content, renderer, syntaxTheme string) template.HTML {
	switch renderer {
	case config.RendererClassic:
		return template.HTML(RenderMarkdownClassic([]byte(content), syntaxTheme))
	case config.RendererMmark:
		rendered, _ := RenderMarkdownMmark([]byte(content), syntaxTheme)
		return template.HTML(rendered)
	default:
		return Plain(content)
	}
}

// Plain escapes content and keeps its line breaks.
func Plain(content string) template.HTML {
	escaped := html.EscapeString(content)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

// Mutex to protect the check-render-set sequence in ContentCached
var renderCacheMutex sync.Mutex

// ContentCached is Content memoized on the content hash, renderer and syntax
// theme.
func ContentCached(content, renderer, syntaxTheme string) template.HTML {
	if renderer == "" || renderer == config.RendererPlain {
		return Plain(content)
	}

	contentHash := util.ContentHashString(content)

	if cached, found := cache.GetRenderedContent(contentHash, renderer, syntaxTheme); found {
		renderLogger.Debug().Str("contentHash", contentHash).Str("renderer", renderer).Msg("Cache hit for rendered content")
		return template.HTML(cached)
	}

	renderCacheMutex.Lock()
	defer renderCacheMutex.Unlock()

	if cached, found := cache.GetRenderedContent(contentHash, renderer, syntaxTheme); found {
		return template.HTML(cached)
	}

	renderLogger.Debug().Str("contentHash", contentHash).Str("renderer", renderer).Msg("Cache miss for rendered content")
	rendered := Content(content, renderer, syntaxTheme)
	cache.SetRenderedContent(contentHash, renderer, syntaxTheme, []byte(rendered))

	return rendered
}

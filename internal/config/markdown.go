package config

import "regexp"

// Markdown renderers selectable with render.markdown.
const (
	RendererPlain   = "plain"
	RendererClassic = "classic"
	RendererMmark   = "mmark"
)

var (
	RegexCallout = regexp.MustCompile(`//\s*<<(\d+)>>`)
)

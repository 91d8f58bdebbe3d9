package render

import (
	"bytes"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chroma_html "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/theme"
)

func HighlightCode(code, language, syntaxTheme string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return html.EscapeString(code)
	}

	var buf strings.Builder
	if err := theme.GetFormatter().Format(&buf, styles.Get(syntaxTheme), iterator); err != nil {
		return html.EscapeString(code)
	}

	return config.RegexCallout.ReplaceAllString(buf.String(), "<span class=\"callout\">$1</span>")
}

// HighlightMarkdown colours the draft's raw markdown for the editor preview.
func HighlightMarkdown(markdown string, syntaxTheme string) (string, error) {
	lexer := lexers.Get("markdown")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(syntaxTheme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chroma_html.New(
		chroma_html.WithClasses(true),
		chroma_html.WithLineNumbers(false),
		chroma_html.PreventSurroundingPre(true),
	)

	iterator, err := lexer.Tokenise(nil, markdown)
	if err != nil {
		return html.EscapeString(markdown), err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return html.EscapeString(markdown), err
	}

	result := `<div class="markdown-editor">` + buf.String() + `</div>`
	return strings.ReplaceAll(result, "\n", "<br>\n"), nil
}

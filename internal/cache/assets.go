package cache

import "html/template"

// Page assets computed once per process: content hashes of the embedded
// static files, served as ETags, and the chroma stylesheet for each syntax
// theme a page has asked for.
var (
	staticHashes = NewCache[string, string]()
	syntaxStyles = NewCache[string, template.CSS]()
)

// GetStaticHash returns the ETag recorded for a static URL path.
func GetStaticHash(urlPath string) (string, bool) {
	return staticHashes.Get(urlPath)
}

func SetStaticHash(urlPath, hash string) {
	staticHashes.Set(urlPath, hash)
}

// GetSyntaxCSS returns the generated stylesheet for a syntax theme.
func GetSyntaxCSS(syntaxTheme string) (template.CSS, bool) {
	return syntaxStyles.Get(syntaxTheme)
}

func SetSyntaxCSS(syntaxTheme string, css template.CSS) {
	syntaxStyles.Set(syntaxTheme, css)
}

// Package routes defines HTTP route constants for the application.
package routes

const (
	// Static and assets
	RobotsPath     = "/robots.txt"
	ThemeToggle    = "/theme/toggle"
	SyntaxThemeGet = "/syntax-theme/{theme}"

	// SSE
	EventsPath = "/events"

	// Root
	RootPath = "/"

	// Auth
	AuthLogin  = "/auth/login"
	AuthSignup = "/auth/signup"

	// Posts
	Posts          = "/posts"
	PostsRefresh   = "/posts/refresh"
	PostEdit       = "/posts/{id}/edit"
	PostEditCancel = "/posts/edit/cancel"
	PostDelete     = "/posts/{id}/delete"
)

// Pattern prefixes a route with an HTTP method for http.ServeMux.
func Pattern(method, path string) string {
	return method + " " + path
}

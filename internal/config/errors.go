package config

const (
	// Startup errors
	ErrLoadConfigFmt  = "Failed to load config: %v"
	ErrOpenServiceFmt = "Failed to open service backend: %v"
	ErrParseTemplates = "Failed to parse templates"
	ErrListenAndServe = "Server stopped"

	// Request errors
	ErrSessionRequired     = "Session required"
	ErrUnknownPost         = "Post not found"
	ErrBusy                = "Another request is still in progress"
	ErrLoginRequired       = "Login required"
	ErrInternalServerError = "Internal server error"

	// Config generator errors
	ErrWriteConfigContentFmt = "Failed to write config content: %v"
)

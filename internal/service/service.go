// Package service defines the boundary between the post board UI and the
// backend it talks to, together with the stand-in backends used until a real
// one exists.
package service

import (
	"context"
	"errors"

	"github.com/debemdeboas/postboard/internal/model"
	"github.com/rs/zerolog"
)

// Service is the backend API the controller depends on. Every call reports
// failure through its error; none of them retry.
type Service interface {
	Login(ctx context.Context, email, password string) (model.Token, error)
	Signup(ctx context.Context, email, password string) error

	ListPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, title, content string) error
	UpdatePost(ctx context.Context, id model.PostID, title, content string) error
	DeletePost(ctx context.Context, id model.PostID) error
}

var ErrPostNotFound = errors.New("post not found")

// Backends selectable with service.backend.
const (
	BackendPlaceholder = "placeholder"
	BackendSQLite      = "sqlite"
)

var serviceLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	serviceLogger = l
}

// FixturePosts are the posts every stand-in backend starts with.
func FixturePosts() []model.Post {
	return []model.Post{
		{ID: "1", Title: "First Post", Content: "This is the first post content."},
		{ID: "2", Title: "Second Post", Content: "This is the second post content."},
	}
}

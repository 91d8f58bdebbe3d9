package repository

import (
	"context"
	"errors"

	"github.com/debemdeboas/postboard/internal/model"
	"github.com/rs/zerolog"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Init(ctx context.Context) error

	// GetPosts returns every post in insertion order.
	GetPosts(ctx context.Context) ([]model.Post, error)

	NewPost() *model.Post
	SavePost(ctx context.Context, post *model.Post) error
	SetPostContent(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id model.PostID) error
}

var repoLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}

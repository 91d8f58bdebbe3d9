package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/repository"
	"github.com/google/uuid"
)

// PostStore is the part of a post repository the Repository backend needs.
type PostStore interface {
	GetPosts(ctx context.Context) ([]model.Post, error)
	NewPost() *model.Post
	SavePost(ctx context.Context, post *model.Post) error
	SetPostContent(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id model.PostID) error
}

// Repository is a working stand-in backend over a post store. Login and
// signup accept any credentials; posts live as long as the store does.
type Repository struct {
	store PostStore
}

func NewRepository(store PostStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Login(ctx context.Context, email, password string) (model.Token, error) {
	if err := ctx.Err(); err != nil {
		return model.Token{}, err
	}
	serviceLogger.Debug().Str("email", email).Msg("Login")
	return model.Token{AccessToken: uuid.New().String()}, nil
}

func (r *Repository) Signup(ctx context.Context, email, password string) error {
	serviceLogger.Debug().Str("email", email).Msg("Signup")
	return ctx.Err()
}

func (r *Repository) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := r.store.GetPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *Repository) CreatePost(ctx context.Context, title, content string) error {
	post := r.store.NewPost()
	post.Title = title
	post.Content = content

	if err := r.store.SavePost(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	serviceLogger.Info().Str("post_id", string(post.ID)).Str("title", title).Msg("Post created")
	return nil
}

func (r *Repository) UpdatePost(ctx context.Context, id model.PostID, title, content string) error {
	err := r.store.SetPostContent(ctx, &model.Post{ID: id, Title: title, Content: content})
	if err != nil {
		return fmt.Errorf("update post: %w", translate(err))
	}

	serviceLogger.Info().Str("post_id", string(id)).Str("title", title).Msg("Post updated")
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, id model.PostID) error {
	if err := r.store.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", translate(err))
	}

	serviceLogger.Info().Str("post_id", string(id)).Msg("Post deleted")
	return nil
}

func translate(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return err
}

package service

import (
	"context"

	"github.com/debemdeboas/postboard/internal/model"
)

const PlaceholderAccessToken = "fake-access-token"

// Placeholder accepts every call and always lists the same two posts.
// Mutations are accepted and forgotten.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Login(ctx context.Context, email, password string) (model.Token, error) {
	if err := ctx.Err(); err != nil {
		return model.Token{}, err
	}
	serviceLogger.Debug().Str("email", email).Msg("Placeholder login")
	return model.Token{AccessToken: PlaceholderAccessToken}, nil
}

func (p *Placeholder) Signup(ctx context.Context, email, password string) error {
	serviceLogger.Debug().Str("email", email).Msg("Placeholder signup")
	return ctx.Err()
}

func (p *Placeholder) ListPosts(ctx context.Context) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FixturePosts(), nil
}

func (p *Placeholder) CreatePost(ctx context.Context, title, content string) error {
	serviceLogger.Debug().Str("title", title).Msg("Placeholder create post")
	return ctx.Err()
}

func (p *Placeholder) UpdatePost(ctx context.Context, id model.PostID, title, content string) error {
	serviceLogger.Debug().Str("post_id", string(id)).Str("title", title).Msg("Placeholder update post")
	return ctx.Err()
}

func (p *Placeholder) DeletePost(ctx context.Context, id model.PostID) error {
	serviceLogger.Debug().Str("post_id", string(id)).Msg("Placeholder delete post")
	return ctx.Err()
}

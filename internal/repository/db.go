// Package repository stores posts for the in-process backend.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/debemdeboas/postboard/internal/db"
	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/util"
	"github.com/debemdeboas/postboard/internal/util/compression"
	"github.com/google/uuid"
)

type DBPostRepository struct { // implements PostRepository
	db         db.DB
	compressor compression.Compressor
}

func NewDBPostRepository(db db.DB, compressor compression.Compressor) *DBPostRepository {
	if compressor == nil {
		compressor = compression.ZstdCompressor{}
	}
	return &DBPostRepository{
		db: db,

		compressor: compressor,
	}
}

func (r *DBPostRepository) Init(ctx context.Context) error {
	if _, err := r.GetPosts(ctx); err != nil {
		return fmt.Errorf("error initializing posts: %w", err)
	}
	return nil
}

// Seed inserts posts with their ids as given, skipping ids already present.
func (r *DBPostRepository) Seed(ctx context.Context, posts []model.Post) error {
	now := time.Now().UTC()
	for _, p := range posts {
		compressed, err := r.compressor.Compress([]byte(p.Content))
		if err != nil {
			return fmt.Errorf("error compressing content: %w", err)
		}

		_, err = r.db.Exec(ctx,
			`INSERT OR IGNORE INTO posts (id, title, content, content_hash, created_at, modified_at) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, compressed, util.ContentHash(compressed), now, now,
		)
		if err != nil {
			return fmt.Errorf("error seeding post %s: %w", p.ID, err)
		}
	}

	repoLogger.Info().Int("count", len(posts)).Msg("Posts seeded")
	return nil
}

func (r *DBPostRepository) GetPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, content FROM posts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)

	for rows.Next() {
		var post model.Post
		var compressed []byte

		if err := rows.Scan(&post.ID, &post.Title, &compressed); err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}

		content, err := r.compressor.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("error decompressing content: %w", err)
		}
		post.Content = string(content)

		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (r *DBPostRepository) NewPost() *model.Post {
	return &model.Post{
		ID: model.PostID(uuid.New().String()),
	}
}

func (r *DBPostRepository) SavePost(ctx context.Context, post *model.Post) error {
	compressed, err := r.compressor.Compress([]byte(post.Content))
	if err != nil {
		return fmt.Errorf("error compressing content: %w", err)
	}

	now := time.Now().UTC()
	res, err := r.db.Exec(ctx,
		`INSERT INTO posts (id, title, content, content_hash, created_at, modified_at) VALUES (?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, compressed, util.ContentHash(compressed), now, now,
	)
	if err != nil {
		return fmt.Errorf("error saving post: %w", err)
	}

	repoLogger.Debug().Interface("result", res).Str("post_id", string(post.ID)).Msg("Post saved")

	return nil
}

func (r *DBPostRepository) SetPostContent(ctx context.Context, post *model.Post) error {
	compressed, err := r.compressor.Compress([]byte(post.Content))
	if err != nil {
		return fmt.Errorf("error compressing content: %w", err)
	}
	hash := util.ContentHash(compressed)

	var title, currentHash string
	err = r.db.QueryRow(ctx, `SELECT title, content_hash FROM posts WHERE id = ?`, post.ID).Scan(&title, &currentHash)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrPostNotFound, post.ID)
	} else if err != nil {
		return fmt.Errorf("error reading post: %w", err)
	}

	if title == post.Title && currentHash == hash {
		repoLogger.Debug().Str("post_id", string(post.ID)).Msg("Post unchanged, skipping write")
		return nil
	}

	res, err := r.db.Exec(ctx,
		`UPDATE posts SET title = ?, content = ?, content_hash = ?, modified_at = ? WHERE id = ?`,
		post.Title, compressed, hash, time.Now().UTC(), post.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}

	repoLogger.Debug().Interface("result", res).Str("post_id", string(post.ID)).Msg("Post content set")

	return nil
}

func (r *DBPostRepository) DeletePost(ctx context.Context, id model.PostID) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	repoLogger.Debug().Str("post_id", string(id)).Msg("Post deleted")

	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/debemdeboas/postboard/internal/db"
	"github.com/debemdeboas/postboard/internal/repository"
	"github.com/debemdeboas/postboard/internal/util/compression"
)

// Open builds the backend named by the service.backend setting. The returned
// close function releases whatever the backend holds.
func Open(ctx context.Context, backend, compressor string) (Service, func() error, error) {
	switch backend {
	case "", BackendPlaceholder:
		return NewPlaceholder(), func() error { return nil }, nil
	case BackendSQLite:
		c, err := compression.New(compressor)
		if err != nil {
			return nil, nil, err
		}

		conn := db.NewSQLite(db.MemoryDSN)
		if err := conn.InitDB(); err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}

		repo := repository.NewDBPostRepository(conn, c)
		if err := repo.Seed(ctx, FixturePosts()); err != nil {
			conn.Close()
			return nil, nil, err
		}
		if err := repo.Init(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}

		return NewRepository(repo), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown service backend %q", backend)
	}
}

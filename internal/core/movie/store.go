// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListMovies(ctx context.Context, filter repository.Filter) ([]*Movie, int, error)
	FindMovie(ctx context.Context, criteria repository.Criteria) (*Movie, error)
	CreateMovie(ctx context.Context, movie *Movie) (int, error)
	UpdateMovie(ctx context.Context, movie *Movie) (int64, error)
	DeleteMovie(ctx context.Context, id int) (int64, error)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListSeasons(ctx context.Context, filter repository.Filter) ([]*Season, int, error)
	FindSeason(ctx context.Context, criteria repository.Criteria) (*Season, error)
	CreateSeason(ctx context.Context, input CreateInput) (int, error)
	UpdateSeason(ctx context.Context, season *Season) (int64, error)
	DeleteSeason(ctx context.Context, id int) (int64, error)
}

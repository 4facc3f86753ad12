// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListEpisodes(ctx context.Context, filter repository.Filter) ([]*Episode, int, error)
	FindEpisode(ctx context.Context, criteria repository.Criteria) (*Episode, error)
	CreateEpisode(ctx context.Context, input CreateInput) (int, error)
	UpdateEpisode(ctx context.Context, episode *Episode) (int64, error)
	DeleteEpisode(ctx context.Context, id int) (int64, error)
}

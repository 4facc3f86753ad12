// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListShows(ctx context.Context, filter repository.Filter) ([]*Show, int, error)
	FindShow(ctx context.Context, criteria repository.Criteria) (*Show, error)
	CreateShow(ctx context.Context, show *Show) (int, error)
	UpdateShow(ctx context.Context, show *Show) (int64, error)
	DeleteShow(ctx context.Context, id int) (int64, error)
}

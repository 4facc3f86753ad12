// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Repository is the persistence boundary of authors.
type Repository interface {
	ListAuthors(ctx context.Context, filter repository.Filter) ([]*Author, int, error)
	FindAuthor(ctx context.Context, criteria repository.Criteria) (*Author, error)
	CreateAuthor(ctx context.Context, input CreateInput) (int, error)
	UpdateAuthor(ctx context.Context, author *Author) (int64, error)
	DeleteAuthor(ctx context.Context, id int) (int64, error)

	// CitationIDs lists the citations the author is linked to.
	CitationIDs(ctx context.Context, id int) ([]int, error)
	// UnlinkAuthor removes the author from every citation.
	UnlinkAuthor(ctx context.Context, id int) error
}

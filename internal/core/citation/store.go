// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListCitations(ctx context.Context, filter repository.Filter) ([]*Citation, int, error)
	FindCitation(ctx context.Context, criteria repository.Criteria) (*Citation, error)
	CreateCitation(ctx context.Context, input CreateInput) (int, error)
	UpdateCitation(ctx context.Context, citation *Citation) (int64, error)
	DeleteCitation(ctx context.Context, id int) (int64, error)

	// Actor and author links
	AssociateActors(ctx context.Context, id int, actorIDs []int) error
	AssociateAuthors(ctx context.Context, id int, authorIDs []int) error
	ReplaceActors(ctx context.Context, id int, actorIDs []int) error
	ReplaceAuthors(ctx context.Context, id int, authorIDs []int) error
	DissociateActor(ctx context.Context, id, actorID int) error
	DissociateAuthor(ctx context.Context, id, authorID int) error
	UnlinkCitation(ctx context.Context, id int) error
}

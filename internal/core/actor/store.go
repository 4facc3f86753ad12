// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Repository is the persistence boundary of actors.
type Repository interface {
	ListActors(ctx context.Context, filter repository.Filter) ([]*Actor, int, error)
	FindActor(ctx context.Context, criteria repository.Criteria) (*Actor, error)
	CreateActor(ctx context.Context, input CreateInput) (int, error)
	UpdateActor(ctx context.Context, actor *Actor) (int64, error)
	DeleteActor(ctx context.Context, id int) (int64, error)

	// LinkedIDs lists the characters and citations the actor is linked to.
	LinkedIDs(ctx context.Context, id int) (characterIDs, citationIDs []int, err error)

	// UnlinkActor removes the actor from every character and citation.
	UnlinkActor(ctx context.Context, id int) error
}

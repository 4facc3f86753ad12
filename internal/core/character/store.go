// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"context"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

type Repository interface {
	ListCharacters(ctx context.Context, filter repository.Filter) ([]*Character, int, error)
	FindCharacter(ctx context.Context, criteria repository.Criteria) (*Character, error)
	CreateCharacter(ctx context.Context, input CreateInput) (int, error)
	UpdateCharacter(ctx context.Context, character *Character) (int64, error)
	DeleteCharacter(ctx context.Context, id int) (int64, error)

	// Actor links
	ActorIDs(ctx context.Context, id int) ([]int, error)
	AssociateActors(ctx context.Context, id int, actorIDs []int) error
	ReplaceActors(ctx context.Context, id int, actorIDs []int) error
	DissociateActor(ctx context.Context, id, actorID int) error
	DissociateActors(ctx context.Context, id int) error
}

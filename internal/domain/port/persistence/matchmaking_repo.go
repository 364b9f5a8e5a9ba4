package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// MatchmakingRepository manages the unordered waiting list
type MatchmakingRepository interface {
	// Add inserts a waiting-list entry and fills in its generated ID
	Add(ctx context.Context, entry *entity.MatchmakingEntry) error

	// List retrieves every entry currently waiting
	List(ctx context.Context) ([]*entity.MatchmakingEntry, error)

	// Remove deletes an entry by ID
	Remove(ctx context.Context, id uint64) error

	// RemoveByCorreu deletes entries by account email
	RemoveByCorreu(ctx context.Context, correu string) error
}

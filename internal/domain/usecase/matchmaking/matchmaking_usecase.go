package matchmaking

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// MatchmakingUseCase manages the unordered waiting list. No pairing or
// scheduling happens here; clients read the list and decide themselves.
type MatchmakingUseCase struct {
	repo         persistence.MatchmakingRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMatchmakingUseCase creates a new MatchmakingUseCase
func NewMatchmakingUseCase(
	repo persistence.MatchmakingRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *MatchmakingUseCase {
	return &MatchmakingUseCase{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Enqueue snapshots an account into the waiting list and returns the
// entry id
func (m *MatchmakingUseCase) Enqueue(ctx context.Context, user *entity.User) (uint64, error) {
	if user == nil || user.Correu == "" {
		return 0, errs.ErrInvalidRequest
	}

	entry := entity.SnapshotUser(user, m.timeProvider.Now())
	if err := m.repo.Add(ctx, entry); err != nil {
		return 0, err
	}

	m.logger.Info("Account enqueued for matchmaking", map[string]any{
		"entry_id": entry.ID,
		"correu":   entry.Correu,
	})
	return entry.ID, nil
}

// List returns the current waiting list
func (m *MatchmakingUseCase) List(ctx context.Context) ([]*entity.MatchmakingEntry, error) {
	return m.repo.List(ctx)
}

// Remove deletes a waiting-list entry by id
func (m *MatchmakingUseCase) Remove(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidRequest
	}
	return m.repo.Remove(ctx, id)
}

// RemoveByCorreu deletes waiting-list entries by account email
func (m *MatchmakingUseCase) RemoveByCorreu(ctx context.Context, correu string) error {
	if correu == "" {
		return errs.ErrInvalidRequest
	}
	return m.repo.RemoveByCorreu(ctx, correu)
}

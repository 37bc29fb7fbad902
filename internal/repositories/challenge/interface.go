package challenge

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/formfighter/ringside/internal/repositories/challenge Repository

import (
	"context"

	"github.com/formfighter/ringside/internal/models"
)

// Repository defines the interface for challenge data persistence
type Repository interface {
	// SaveChallenge persists a challenge and notifies subscribed watchers
	SaveChallenge(ctx context.Context, input *SaveChallengeInput) error

	// GetChallenge retrieves a challenge by ID
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// GetActiveChallenge retrieves the creator's currently active challenge
	GetActiveChallenge(ctx context.Context, input *GetActiveChallengeInput) (*models.Challenge, error)

	// ArchiveChallenge moves a challenge into the completed history of
	// every participant and clears the creator's active mapping
	ArchiveChallenge(ctx context.Context, input *ArchiveChallengeInput) error

	// GetCompletedChallenges retrieves a user's completed challenges, newest first
	GetCompletedChallenges(ctx context.Context, input *GetCompletedChallengesInput) (*GetCompletedChallengesOutput, error)

	// DeleteChallenge removes a challenge
	DeleteChallenge(ctx context.Context, input *DeleteChallengeInput) error

	// SubscribeUpdates opens a realtime stream of change notices scoped to
	// the given user. The caller owns the returned subscription and must
	// close it.
	SubscribeUpdates(ctx context.Context, input *SubscribeUpdatesInput) (*Subscription, error)
}

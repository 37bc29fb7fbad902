package challenge

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/formfighter/ringside/internal/services/challenge Service

import "context"

// Service defines the interface for challenge operations
type Service interface {
	// StartListening establishes (or re-establishes) the realtime
	// subscription scoped to the given user's active challenge and
	// completed history. Idempotent for the same user; independent
	// across users.
	StartListening(ctx context.Context, input *StartListeningInput) error

	// StopListening tears down every realtime subscription
	StopListening()

	// Subscribe registers an observer for the given user's snapshot
	// pushes. The returned cancel function removes the observer, closes
	// the channel, and tears down the user's store subscription when no
	// observers remain.
	Subscribe(userID string) (<-chan Snapshot, func())

	// CreateChallenge creates a new challenge for the caller
	CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error)

	// HandleInvite validates an invite and enrolls the user
	HandleInvite(ctx context.Context, input *HandleInviteInput) (*HandleInviteOutput, error)

	// LeaveChallenge removes a participant from a challenge
	LeaveChallenge(ctx context.Context, input *LeaveChallengeInput) (*LeaveChallengeOutput, error)

	// RecordScore applies a scored round to a participant's aggregates
	RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error)

	// FetchChallenge performs a point lookup; absence is not an error
	FetchChallenge(ctx context.Context, input *FetchChallengeInput) (*FetchChallengeOutput, error)

	// LoadMoreEvents returns one page of events strictly older than the cursor
	LoadMoreEvents(ctx context.Context, input *LoadMoreEventsInput) (*LoadMoreEventsOutput, error)

	// GetLeaderboard derives the current standings for a challenge
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// SetPendingChallenge stages an invite locally, e.g. when a deep
	// link arrives before the user's identity has resolved
	SetPendingChallenge(input *SetPendingChallengeInput)

	// PendingChallenge returns the locally staged invite, if any
	PendingChallenge() (*PendingChallenge, bool)

	// ClearPendingChallenge discards the staged invite without contacting the store
	ClearPendingChallenge()
}

package challenge

import (
	"time"

	"github.com/formfighter/ringside/internal/common/clock"
	"github.com/formfighter/ringside/internal/common/uuid"
	"github.com/formfighter/ringside/internal/models"
	challengeRepo "github.com/formfighter/ringside/internal/repositories/challenge"
	eventRepo "github.com/formfighter/ringside/internal/repositories/event"
)

// Config holds configuration for the challenge service
type Config struct {
	// Number of events returned per feed page
	EventPageSize int

	// Length of a challenge's competitive window
	ChallengeDuration time.Duration

	// Repository dependencies
	ChallengeRepo challengeRepo.Repository
	EventRepo     eventRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Snapshot is one authoritative view of a user's challenge scope as
// pushed to subscribers. A nil ActiveChallenge is a valid state and
// means the user has no challenge running.
type Snapshot struct {
	// ActiveChallenge is the user's currently running challenge, if any
	ActiveChallenge *models.Challenge

	// CompletedChallenges is the user's archive, newest first
	CompletedChallenges []*models.Challenge
}

// PendingChallenge is a locally staged invite that has not yet been
// confirmed against the store
type PendingChallenge struct {
	// ChallengeID is the challenge the invite points at
	ChallengeID string

	// ReferrerID is the participant who shared the invite, if known
	ReferrerID string
}

// StartListeningInput contains parameters for establishing the realtime
// subscription
type StartListeningInput struct {
	// UserID is the user whose active challenge and history are watched
	UserID string
}

// CreateChallengeInput contains parameters for creating a new challenge
type CreateChallengeInput struct {
	// CreatorID is the identity of the user creating the challenge
	CreatorID string

	// CreatorName is the display name of the creator
	CreatorName string

	// Name is the user-supplied title
	Name string

	// Description is the user-supplied description
	Description string
}

// CreateChallengeOutput contains the result of creating a challenge
type CreateChallengeOutput struct {
	// Challenge is the newly created challenge
	Challenge *models.Challenge
}

// HandleInviteInput contains parameters for processing an invite
type HandleInviteInput struct {
	// ChallengeID is the challenge being joined
	ChallengeID string

	// UserID is the identity of the joining user
	UserID string

	// UserName is the display name of the joining user
	UserName string

	// ReferrerID is the participant whose link was followed, if any
	ReferrerID string
}

// HandleInviteOutput contains the result of processing an invite
type HandleInviteOutput struct {
	// Challenge is the challenge after the join was applied
	Challenge *models.Challenge
}

// LeaveChallengeInput contains parameters for leaving a challenge
type LeaveChallengeInput struct {
	// ChallengeID is the challenge being left
	ChallengeID string

	// UserID is the identity of the leaving user
	UserID string
}

// LeaveChallengeOutput contains the result of leaving a challenge
type LeaveChallengeOutput struct {
	// Archived indicates the challenge was ended because its creator left
	Archived bool
}

// RecordScoreInput contains parameters for reporting a scored round
type RecordScoreInput struct {
	// ChallengeID is the challenge the round belongs to
	ChallengeID string

	// UserID is the participant who completed the round
	UserID string

	// Score is the round's form score
	Score float64

	// Jabs is the number of jabs thrown in the round
	Jabs int
}

// RecordScoreOutput contains the result of reporting a scored round
type RecordScoreOutput struct {
	// Participant is the participant after aggregates were applied
	Participant *models.Participant
}

// FetchChallengeInput contains parameters for a point lookup
type FetchChallengeInput struct {
	// ChallengeID is the challenge to fetch
	ChallengeID string
}

// FetchChallengeOutput contains the result of a point lookup. A nil
// Challenge means the challenge does not exist; that is not an error.
type FetchChallengeOutput struct {
	Challenge *models.Challenge
}

// LoadMoreEventsInput contains parameters for fetching an older feed page
type LoadMoreEventsInput struct {
	// ChallengeID is the challenge whose feed is paginated
	ChallengeID string

	// Before is the pagination cursor: the timestamp of the oldest
	// event already held. Only strictly older events are returned.
	Before time.Time
}

// LoadMoreEventsOutput contains one page of older events, newest first
type LoadMoreEventsOutput struct {
	// Events holds at most one page of events
	Events []*models.ChallengeEvent

	// HasMore reports whether a full page came back. A short page is
	// the only exhaustion signal the store offers.
	HasMore bool
}

// GetLeaderboardInput contains parameters for deriving the standings
type GetLeaderboardInput struct {
	// ChallengeID is the challenge to rank
	ChallengeID string
}

// GetLeaderboardOutput contains the derived standings
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// SetPendingChallengeInput contains parameters for staging an invite
type SetPendingChallengeInput struct {
	// ChallengeID is the challenge the invite points at
	ChallengeID string

	// ReferrerID is the participant who shared the invite, if known
	ReferrerID string
}

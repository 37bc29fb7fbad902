package challenge

import "github.com/formfighter/ringside/internal/models"

type SaveChallengeInput struct {
	Challenge *models.Challenge
}

type GetChallengeInput struct {
	ChallengeID string
}

type GetActiveChallengeInput struct {
	CreatorID string
}

type ArchiveChallengeInput struct {
	ChallengeID string
}

type GetCompletedChallengesInput struct {
	UserID string
}

type GetCompletedChallengesOutput struct {
	Challenges []*models.Challenge
}

type DeleteChallengeInput struct {
	ChallengeID string
}

type SubscribeUpdatesInput struct {
	UserID string
}

// UpdateNotice is a single change notification pushed to a subscriber.
type UpdateNotice struct {
	// UserID is the user whose challenge scope changed
	UserID string

	// ChallengeID is the challenge that changed
	ChallengeID string
}

// Subscription is a live stream of update notices.
type Subscription struct {
	// C delivers one notice per observed change until the subscription
	// is closed.
	C <-chan UpdateNotice

	closeFn func()
}

// NewSubscription wraps a notice channel and a close function.
func NewSubscription(c <-chan UpdateNotice, closeFn func()) *Subscription {
	return &Subscription{C: c, closeFn: closeFn}
}

// Close tears down the subscription and closes C.
func (s *Subscription) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

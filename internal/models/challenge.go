package models

import (
	"time"
)

// ChallengeStatus represents the lifecycle state of a challenge
type ChallengeStatus string

const (
	// ChallengeStatusActive indicates the challenge is running and can be
	// joined and scored
	ChallengeStatusActive ChallengeStatus = "active"

	// ChallengeStatusCompleted indicates the challenge ended and lives in
	// the participants' history
	ChallengeStatusCompleted ChallengeStatus = "completed"
)

// Challenge represents one timed multiplayer competition
type Challenge struct {
	// ID is the unique identifier for the challenge
	ID string

	// Name is the user-supplied title
	Name string

	// Description is the user-supplied description
	Description string

	// CreatorID is the user who created the challenge
	CreatorID string

	// Status is the lifecycle state of the challenge
	Status ChallengeStatus

	// StartTime is when the competitive window opened
	StartTime time.Time

	// EndTime is when the competitive window closes
	EndTime time.Time

	// Participants are the enrolled competitors, enrollment order
	Participants []*Participant

	// RecentEvents is the newest page of the challenge's event feed,
	// newest first. Older pages are fetched on demand and appended.
	RecentEvents []*ChallengeEvent

	// CreatedAt is when the challenge was created
	CreatedAt time.Time

	// UpdatedAt is when the challenge was last modified
	UpdatedAt time.Time
}

// IsExpired reports whether the competitive window has closed
func (c *Challenge) IsExpired(now time.Time) bool {
	return !now.Before(c.EndTime)
}

// FindParticipant returns the enrolled participant with the given user
// identity, or nil.
func (c *Challenge) FindParticipant(userID string) *Participant {
	for _, p := range c.Participants {
		if p.ID == userID {
			return p
		}
	}
	return nil
}

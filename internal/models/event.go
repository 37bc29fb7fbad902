package models

import (
	"time"
)

// EventType represents the kind of challenge event
type EventType string

const (
	// EventTypeInvite indicates a participant joined via an invite
	EventTypeInvite EventType = "invite"

	// EventTypeScore indicates a participant reported a scored round
	EventTypeScore EventType = "score"
)

// ChallengeEvent is an immutable timestamped fact appended to a
// challenge's history. Events are never edited or removed once written;
// they are only merged by timestamp ordering when paginating.
type ChallengeEvent struct {
	// ID is the unique identifier for the event
	ID string

	// ChallengeID is the challenge this event belongs to
	ChallengeID string

	// Type is the kind of event
	Type EventType

	// UserName is the display name of the user the event is about
	UserName string

	// Details is the display text for the event
	Details string

	// Timestamp is when the event occurred; used for both ordering and
	// time-bucket grouping
	Timestamp time.Time
}

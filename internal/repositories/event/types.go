package event

import (
	"time"

	"github.com/formfighter/ringside/internal/models"
)

type AddEventInput struct {
	Event *models.ChallengeEvent
}

type GetRecentEventsInput struct {
	ChallengeID string
	Limit       int
}

type GetRecentEventsOutput struct {
	Events []*models.ChallengeEvent
}

type GetEventsBeforeInput struct {
	ChallengeID string

	// Before is the exclusive upper bound; only events with a strictly
	// older timestamp are returned
	Before time.Time

	Limit int
}

type GetEventsBeforeOutput struct {
	Events []*models.ChallengeEvent
}

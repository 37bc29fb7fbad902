package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/formfighter/ringside/internal/repositories/event Repository

import "context"

// Repository defines the interface for the append-only event ledger
type Repository interface {
	// AddEvent appends an event to a challenge's ledger
	AddEvent(ctx context.Context, input *AddEventInput) error

	// GetRecentEvents retrieves the newest events for a challenge, newest first
	GetRecentEvents(ctx context.Context, input *GetRecentEventsInput) (*GetRecentEventsOutput, error)

	// GetEventsBefore retrieves events strictly older than the given
	// timestamp, newest first
	GetEventsBefore(ctx context.Context, input *GetEventsBeforeInput) (*GetEventsBeforeOutput, error)
}

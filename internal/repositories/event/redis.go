package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/formfighter/ringside/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix          = "event:"
	challengeEventsPrefix   = "challenge_events:"
	defaultRecentEventLimit = 15
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddEvent appends an event to a challenge's ledger. Events are
// append-only; there is no update or delete path.
func (r *redisRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	ev := input.Event

	if ev.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	if ev.ChallengeID == "" {
		return errors.New("event challenge ID cannot be empty")
	}

	if ev.Timestamp.IsZero() {
		return errors.New("event timestamp cannot be zero")
	}

	// Marshal the event to JSON
	eventJSON, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the event document
	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, ev.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	// Index the event by timestamp. Millisecond scores keep ordering
	// exact within float64 precision.
	indexKey := fmt.Sprintf("%s%s", challengeEventsPrefix, ev.ChallengeID)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(ev.Timestamp.UnixMilli()),
		Member: ev.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}

	return nil
}

// GetRecentEvents retrieves the newest events for a challenge
func (r *redisRepository) GetRecentEvents(ctx context.Context, input *GetRecentEventsInput) (*GetRecentEventsOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentEventLimit
	}

	indexKey := fmt.Sprintf("%s%s", challengeEventsPrefix, input.ChallengeID)
	eventIDs, err := r.client.ZRevRange(ctx, indexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs: %w", err)
	}

	events, err := r.fetchEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	return &GetRecentEventsOutput{
		Events: events,
	}, nil
}

// GetEventsBefore retrieves events strictly older than the given timestamp
func (r *redisRepository) GetEventsBefore(ctx context.Context, input *GetEventsBeforeInput) (*GetEventsBeforeOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	if input.Before.IsZero() {
		return nil, errors.New("before timestamp cannot be zero")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentEventLimit
	}

	// Exclusive upper bound: only events strictly older than Before.
	indexKey := fmt.Sprintf("%s%s", challengeEventsPrefix, input.ChallengeID)
	eventIDs, err := r.client.ZRevRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   "(" + strconv.FormatInt(input.Before.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs before timestamp: %w", err)
	}

	events, err := r.fetchEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	return &GetEventsBeforeOutput{
		Events: events,
	}, nil
}

// fetchEvents loads event documents in parallel using a pipeline,
// preserving the order of the given IDs.
func (r *redisRepository) fetchEvents(ctx context.Context, eventIDs []string) ([]*models.ChallengeEvent, error) {
	if len(eventIDs) == 0 {
		return []*models.ChallengeEvent{}, nil
	}

	pipe := r.client.Pipeline()
	eventCommands := make([]*redis.StringCmd, 0, len(eventIDs))

	for _, eventID := range eventIDs {
		eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
		eventCommands = append(eventCommands, pipe.Get(ctx, eventKey))
	}

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.ChallengeEvent, 0, len(eventIDs))
	for i, cmd := range eventCommands {
		eventJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Index entry outlived the document; skip it
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventIDs[i], err)
		}

		var ev models.ChallengeEvent
		if err := json.Unmarshal([]byte(eventJSON), &ev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventIDs[i], err)
		}

		events = append(events, &ev)
	}

	return events, nil
}

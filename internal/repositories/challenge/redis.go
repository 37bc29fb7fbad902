package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/formfighter/ringside/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	challengeKeyPrefix = "challenge:"
	activeKeyPrefix    = "active_challenge:"
	completedKeyPrefix = "completed_challenges:"
	updatesKeyPrefix   = "challenge_updates:"
)

// ErrChallengeNotFound is returned when a challenge is not found
var ErrChallengeNotFound = errors.New("challenge not found")

// Config holds configuration for the Redis challenge repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed challenge repository
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

// SaveChallenge persists a challenge to Redis and publishes an update
// notice to every participant's channel
func (r *redisRepository) SaveChallenge(ctx context.Context, input *SaveChallengeInput) error {
	if input == nil || input.Challenge == nil {
		return errors.New("input and challenge cannot be nil")
	}

	ch := input.Challenge

	// Marshal the challenge to JSON
	challengeJSON, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the challenge document
	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, ch.ID)
	pipe.Set(ctx, challengeKey, challengeJSON, 0)

	// Maintain the creator's active mapping. Only one active challenge
	// may exist per creator, so the mapping is a plain key.
	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, ch.CreatorID)
	if ch.Status == models.ChallengeStatusActive {
		pipe.Set(ctx, activeKey, ch.ID, 0)
	} else {
		pipe.Del(ctx, activeKey)
	}

	// Notify every participant's update channel
	for _, userID := range r.participantIDs(ch) {
		updatesKey := fmt.Sprintf("%s%s", updatesKeyPrefix, userID)
		pipe.Publish(ctx, updatesKey, ch.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ID from Redis
func (r *redisRepository) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, input.ChallengeID)
	challengeJSON, err := r.client.Get(ctx, challengeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var ch models.Challenge
	if err := json.Unmarshal([]byte(challengeJSON), &ch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &ch, nil
}

// GetActiveChallenge retrieves the creator's active challenge from Redis
func (r *redisRepository) GetActiveChallenge(ctx context.Context, input *GetActiveChallengeInput) (*models.Challenge, error) {
	if input == nil || input.CreatorID == "" {
		return nil, errors.New("input and creator ID cannot be empty")
	}

	// Get the challenge ID from the creator's active mapping
	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, input.CreatorID)
	challengeID, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get active challenge ID: %w", err)
	}

	return r.GetChallenge(ctx, &GetChallengeInput{
		ChallengeID: challengeID,
	})
}

// ArchiveChallenge marks a challenge completed, clears the creator's
// active mapping, and records the challenge in every participant's
// completed history
func (r *redisRepository) ArchiveChallenge(ctx context.Context, input *ArchiveChallengeInput) error {
	if input == nil || input.ChallengeID == "" {
		return errors.New("input and challenge ID cannot be empty")
	}

	ch, err := r.GetChallenge(ctx, &GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		return err
	}

	ch.Status = models.ChallengeStatusCompleted

	challengeJSON, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	pipe := r.client.Pipeline()

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, ch.ID)
	pipe.Set(ctx, challengeKey, challengeJSON, 0)

	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, ch.CreatorID)
	pipe.Del(ctx, activeKey)

	// Index the completed challenge for every participant, scored by end
	// time so histories come back newest first.
	for _, userID := range r.participantIDs(ch) {
		completedKey := fmt.Sprintf("%s%s", completedKeyPrefix, userID)
		pipe.ZAdd(ctx, completedKey, redis.Z{
			Score:  float64(ch.EndTime.Unix()),
			Member: ch.ID,
		})

		updatesKey := fmt.Sprintf("%s%s", updatesKeyPrefix, userID)
		pipe.Publish(ctx, updatesKey, ch.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive challenge: %w", err)
	}

	return nil
}

// GetCompletedChallenges retrieves a user's completed challenges from Redis
func (r *redisRepository) GetCompletedChallenges(ctx context.Context, input *GetCompletedChallengesInput) (*GetCompletedChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	// Newest first
	completedKey := fmt.Sprintf("%s%s", completedKeyPrefix, input.UserID)
	challengeIDs, err := r.client.ZRevRange(ctx, completedKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get completed challenge IDs: %w", err)
	}

	if len(challengeIDs) == 0 {
		return &GetCompletedChallengesOutput{
			Challenges: []*models.Challenge{},
		}, nil
	}

	// Get all challenges in parallel using a pipeline
	pipe := r.client.Pipeline()
	challengeCommands := make([]*redis.StringCmd, 0, len(challengeIDs))

	for _, challengeID := range challengeIDs {
		challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, challengeID)
		challengeCommands = append(challengeCommands, pipe.Get(ctx, challengeKey))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get completed challenges: %w", err)
	}

	// Process the results, preserving the index order
	challenges := make([]*models.Challenge, 0, len(challengeIDs))
	for i, cmd := range challengeCommands {
		challengeJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Challenge was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get challenge %s: %w", challengeIDs[i], err)
		}

		var ch models.Challenge
		if err := json.Unmarshal([]byte(challengeJSON), &ch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal challenge %s: %w", challengeIDs[i], err)
		}

		challenges = append(challenges, &ch)
	}

	return &GetCompletedChallengesOutput{
		Challenges: challenges,
	}, nil
}

// DeleteChallenge removes a challenge from Redis
func (r *redisRepository) DeleteChallenge(ctx context.Context, input *DeleteChallengeInput) error {
	if input == nil || input.ChallengeID == "" {
		return errors.New("input and challenge ID cannot be empty")
	}

	// Get the challenge first to find its creator and participants
	ch, err := r.GetChallenge(ctx, &GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, ch.ID)
	pipe.Del(ctx, challengeKey)

	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, ch.CreatorID)
	pipe.Del(ctx, activeKey)

	for _, userID := range r.participantIDs(ch) {
		completedKey := fmt.Sprintf("%s%s", completedKeyPrefix, userID)
		pipe.ZRem(ctx, completedKey, ch.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	return nil
}

// SubscribeUpdates opens a Redis pub/sub subscription on the user's
// update channel
func (r *redisRepository) SubscribeUpdates(ctx context.Context, input *SubscribeUpdatesInput) (*Subscription, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	updatesKey := fmt.Sprintf("%s%s", updatesKeyPrefix, input.UserID)
	pubsub := r.client.Subscribe(ctx, updatesKey)

	// Force the subscription to be established before returning so a
	// save immediately after subscribing is not missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to updates: %w", err)
	}

	notices := make(chan UpdateNotice, 16)
	go func() {
		defer close(notices)
		for msg := range pubsub.Channel() {
			notices <- UpdateNotice{
				UserID:      input.UserID,
				ChallengeID: msg.Payload,
			}
		}
	}()

	return NewSubscription(notices, func() {
		_ = pubsub.Close()
	}), nil
}

// participantIDs returns the set of user IDs with an interest in the
// challenge: every participant plus the creator.
func (r *redisRepository) participantIDs(ch *models.Challenge) []string {
	seen := make(map[string]struct{}, len(ch.Participants)+1)
	ids := make([]string, 0, len(ch.Participants)+1)

	for _, p := range ch.Participants {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}

	if _, ok := seen[ch.CreatorID]; !ok {
		ids = append(ids, ch.CreatorID)
	}

	return ids
}

package challenge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/formfighter/ringside/internal/common/clock"
	"github.com/formfighter/ringside/internal/common/uuid"
	"github.com/formfighter/ringside/internal/models"
	challengeRepo "github.com/formfighter/ringside/internal/repositories/challenge"
	eventRepo "github.com/formfighter/ringside/internal/repositories/event"
)

const (
	defaultEventPageSize     = 15
	defaultChallengeDuration = 2 * time.Hour
)

// service implements the Service interface
type service struct {
	config        *Config
	challengeRepo challengeRepo.Repository
	eventRepo     eventRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID

	// realtime state, guarded by mu: one store subscription per user and
	// the per-user observer registries. Broadcasts also run under mu so
	// publishes are serialized and the last one always wins.
	mu          sync.Mutex
	listeners   map[string]*listenState
	subscribers map[string]map[int]chan Snapshot
	nextSubID   int

	// locally staged invite, guarded by pendingMu
	pendingMu sync.Mutex
	pending   *PendingChallenge
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChallengeRepo == nil {
		return nil, ErrNilChallengeRepo
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	if cfg.EventPageSize <= 0 {
		cfg.EventPageSize = defaultEventPageSize
	}

	if cfg.ChallengeDuration <= 0 {
		cfg.ChallengeDuration = defaultChallengeDuration
	}

	return &service{
		config:        cfg,
		challengeRepo: cfg.ChallengeRepo,
		eventRepo:     cfg.EventRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		listeners:     make(map[string]*listenState),
		subscribers:   make(map[string]map[int]chan Snapshot),
	}, nil
}

// CreateChallenge creates a new challenge for the caller. The store
// remains authoritative: creation fails if the caller already has an
// active challenge.
func (s *service) CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error) {
	if input == nil || input.CreatorID == "" {
		return nil, errors.New("input and creator ID cannot be empty")
	}

	// Check if the creator already has an active challenge
	existing, err := s.challengeRepo.GetActiveChallenge(ctx, &challengeRepo.GetActiveChallengeInput{
		CreatorID: input.CreatorID,
	})

	if err == nil && existing != nil {
		return nil, ErrAlreadyInChallenge
	}

	// Only proceed if the error is "not found"
	if err != nil && !errors.Is(err, challengeRepo.ErrChallengeNotFound) {
		return nil, err
	}

	now := s.clock.Now()

	ch := &models.Challenge{
		ID:          s.uuidGenerator.NewUUID(),
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   input.CreatorID,
		Status:      models.ChallengeStatusActive,
		StartTime:   now,
		EndTime:     now.Add(s.config.ChallengeDuration),
		Participants: []*models.Participant{
			{
				ID:       input.CreatorID,
				Name:     input.CreatorName,
				JoinedAt: now,
			},
		},
		RecentEvents: []*models.ChallengeEvent{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.challengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: ch,
	})
	if err != nil {
		return nil, err
	}

	return &CreateChallengeOutput{
		Challenge: ch,
	}, nil
}

// HandleInvite validates the target challenge and enrolls the user. A
// missing or expired challenge is reported as ErrInvalidChallenge.
func (s *service) HandleInvite(ctx context.Context, input *HandleInviteInput) (*HandleInviteOutput, error) {
	if input == nil || input.ChallengeID == "" || input.UserID == "" {
		return nil, errors.New("input, challenge ID and user ID cannot be empty")
	}

	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrInvalidChallenge
		}
		return nil, err
	}

	now := s.clock.Now()
	if ch.Status != models.ChallengeStatusActive || ch.IsExpired(now) {
		return nil, ErrInvalidChallenge
	}

	// A given identity appears at most once
	if ch.FindParticipant(input.UserID) == nil {
		ch.Participants = append(ch.Participants, &models.Participant{
			ID:       input.UserID,
			Name:     input.UserName,
			JoinedAt: now,
		})
	}

	// Credit the referrer when their link brought the user in
	if input.ReferrerID != "" {
		if referrer := ch.FindParticipant(input.ReferrerID); referrer != nil {
			referrer.InviteCount++
		}
	}

	ch.UpdatedAt = now

	err = s.challengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: ch,
	})
	if err != nil {
		return nil, err
	}

	err = s.eventRepo.AddEvent(ctx, &eventRepo.AddEventInput{
		Event: &models.ChallengeEvent{
			ID:          s.uuidGenerator.NewUUID(),
			ChallengeID: ch.ID,
			Type:        models.EventTypeInvite,
			UserName:    input.UserName,
			Details:     fmt.Sprintf("%s joined the challenge", input.UserName),
			Timestamp:   now,
		},
	})
	if err != nil {
		return nil, err
	}

	return &HandleInviteOutput{
		Challenge: ch,
	}, nil
}

// LeaveChallenge removes a participant. A creator leaving ends the
// challenge and archives it for everyone.
func (s *service) LeaveChallenge(ctx context.Context, input *LeaveChallengeInput) (*LeaveChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" || input.UserID == "" {
		return nil, errors.New("input, challenge ID and user ID cannot be empty")
	}

	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrInvalidChallenge
		}
		return nil, err
	}

	if ch.FindParticipant(input.UserID) == nil {
		return nil, ErrParticipantNotFound
	}

	if input.UserID == ch.CreatorID {
		err = s.challengeRepo.ArchiveChallenge(ctx, &challengeRepo.ArchiveChallengeInput{
			ChallengeID: ch.ID,
		})
		if err != nil {
			return nil, err
		}

		return &LeaveChallengeOutput{Archived: true}, nil
	}

	remaining := make([]*models.Participant, 0, len(ch.Participants))
	for _, p := range ch.Participants {
		if p.ID != input.UserID {
			remaining = append(remaining, p)
		}
	}
	ch.Participants = remaining
	ch.UpdatedAt = s.clock.Now()

	err = s.challengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: ch,
	})
	if err != nil {
		return nil, err
	}

	return &LeaveChallengeOutput{Archived: false}, nil
}

// RecordScore applies one scored round to a participant's aggregates
// and appends a score event to the feed.
func (s *service) RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil || input.ChallengeID == "" || input.UserID == "" {
		return nil, errors.New("input, challenge ID and user ID cannot be empty")
	}

	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrInvalidChallenge
		}
		return nil, err
	}

	now := s.clock.Now()
	if ch.Status != models.ChallengeStatusActive || ch.IsExpired(now) {
		return nil, ErrInvalidChallenge
	}

	p := ch.FindParticipant(input.UserID)
	if p == nil {
		return nil, ErrParticipantNotFound
	}

	p.TotalJabs += input.Jabs
	p.Rounds++
	p.AverageScore += (input.Score - p.AverageScore) / float64(p.Rounds)

	// FinalScore only moves up
	if input.Score > p.FinalScore {
		p.FinalScore = input.Score
	}

	ch.UpdatedAt = now

	err = s.challengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: ch,
	})
	if err != nil {
		return nil, err
	}

	err = s.eventRepo.AddEvent(ctx, &eventRepo.AddEventInput{
		Event: &models.ChallengeEvent{
			ID:          s.uuidGenerator.NewUUID(),
			ChallengeID: ch.ID,
			Type:        models.EventTypeScore,
			UserName:    p.Name,
			Details:     fmt.Sprintf("%s scored %.1f with %d jabs", p.Name, input.Score, input.Jabs),
			Timestamp:   now,
		},
	})
	if err != nil {
		return nil, err
	}

	return &RecordScoreOutput{
		Participant: p,
	}, nil
}

// FetchChallenge performs a point lookup. A missing challenge yields a
// nil Challenge, not an error.
func (s *service) FetchChallenge(ctx context.Context, input *FetchChallengeInput) (*FetchChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return &FetchChallengeOutput{Challenge: nil}, nil
		}
		return nil, err
	}

	return &FetchChallengeOutput{Challenge: ch}, nil
}

// LoadMoreEvents returns up to one page of events strictly older than
// the cursor, newest first. HasMore is true only for a full page; a
// short page is the store's only exhaustion signal.
func (s *service) LoadMoreEvents(ctx context.Context, input *LoadMoreEventsInput) (*LoadMoreEventsOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	out, err := s.eventRepo.GetEventsBefore(ctx, &eventRepo.GetEventsBeforeInput{
		ChallengeID: input.ChallengeID,
		Before:      input.Before,
		Limit:       s.config.EventPageSize,
	})
	if err != nil {
		return nil, err
	}

	return &LoadMoreEventsOutput{
		Events:  out.Events,
		HasMore: len(out.Events) >= s.config.EventPageSize,
	}, nil
}

// GetLeaderboard derives the standings: FinalScore descending, with
// ties kept in enrollment order.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrInvalidChallenge
		}
		return nil, err
	}

	ranked := make([]*models.Participant, len(ch.Participants))
	copy(ranked, ch.Participants)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	entries := make([]*models.LeaderboardEntry, 0, len(ranked))
	for i, p := range ranked {
		entries = append(entries, &models.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       p.ID,
			UserName:     p.Name,
			FinalScore:   p.FinalScore,
			TotalJabs:    p.TotalJabs,
			AverageScore: p.AverageScore,
		})
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			ChallengeID: ch.ID,
			Entries:     entries,
		},
	}, nil
}

// SetPendingChallenge stages an invite locally until identity resolves
func (s *service) SetPendingChallenge(input *SetPendingChallengeInput) {
	if input == nil || input.ChallengeID == "" {
		return
	}

	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	s.pending = &PendingChallenge{
		ChallengeID: input.ChallengeID,
		ReferrerID:  input.ReferrerID,
	}
}

// PendingChallenge returns the locally staged invite, if any
func (s *service) PendingChallenge() (*PendingChallenge, bool) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if s.pending == nil {
		return nil, false
	}

	pending := *s.pending
	return &pending, true
}

// ClearPendingChallenge discards the staged invite. No store contact.
func (s *service) ClearPendingChallenge() {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	s.pending = nil
}

package challenge

import (
	"context"
	"errors"
	"log"

	challengeRepo "github.com/formfighter/ringside/internal/repositories/challenge"
	eventRepo "github.com/formfighter/ringside/internal/repositories/event"
)

// listenState is one user's live store subscription
type listenState struct {
	sub  *challengeRepo.Subscription
	done chan struct{}
}

// StartListening establishes the realtime subscription for a user and
// pushes an initial snapshot to that user's observers. Calling it again
// for the same user only refreshes the snapshot. Each user gets their
// own subscription, so listening for one user never disturbs another's.
func (s *service) StartListening(ctx context.Context, input *StartListeningInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	s.mu.Lock()
	if _, ok := s.listeners[input.UserID]; !ok {
		sub, err := s.challengeRepo.SubscribeUpdates(ctx, &challengeRepo.SubscribeUpdatesInput{
			UserID: input.UserID,
		})
		if err != nil {
			s.mu.Unlock()
			return err
		}

		ls := &listenState{sub: sub, done: make(chan struct{})}
		s.listeners[input.UserID] = ls

		go s.listenLoop(input.UserID, ls)
	}
	s.mu.Unlock()

	return s.publishSnapshot(ctx, input.UserID)
}

// StopListening tears down every realtime subscription. Used at shutdown;
// individual users are torn down when their last observer cancels.
func (s *service) StopListening() {
	s.mu.Lock()
	states := make([]*listenState, 0, len(s.listeners))
	for userID, ls := range s.listeners {
		delete(s.listeners, userID)
		states = append(states, ls)
	}
	s.mu.Unlock()

	for _, ls := range states {
		ls.sub.Close()
		<-ls.done
	}
}

// Subscribe registers an observer for one user's snapshots. Delivery is
// latest-wins: a slow observer is handed the newest snapshot instead of
// a backlog, so the last push is always authoritative. When a user's
// last observer cancels, that user's store subscription is torn down.
func (s *service) Subscribe(userID string) (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan Snapshot, 1)
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[int]chan Snapshot)
	}
	s.subscribers[userID][id] = ch

	cancel := func() {
		var ls *listenState

		s.mu.Lock()
		if c, ok := s.subscribers[userID][id]; ok {
			delete(s.subscribers[userID], id)
			close(c)
		}
		if len(s.subscribers[userID]) == 0 {
			delete(s.subscribers, userID)
			if l, ok := s.listeners[userID]; ok {
				delete(s.listeners, userID)
				ls = l
			}
		}
		s.mu.Unlock()

		if ls != nil {
			ls.sub.Close()
			<-ls.done
		}
	}

	return ch, cancel
}

// listenLoop refetches and rebroadcasts the user's snapshot on every
// store notice until the subscription closes. Notices outlive any one
// request, so refetches run on their own context.
func (s *service) listenLoop(userID string, ls *listenState) {
	defer close(ls.done)

	ctx := context.Background()
	for range ls.sub.C {
		if err := s.publishSnapshot(ctx, userID); err != nil {
			log.Printf("challenge: failed to refresh snapshot for user %s: %v", userID, err)
		}
	}
}

// publishSnapshot builds the user's current snapshot and pushes it to
// that user's observers in one explicit publish step.
func (s *service) publishSnapshot(ctx context.Context, userID string) error {
	snap, err := s.buildSnapshot(ctx, userID)
	if err != nil {
		return err
	}

	s.broadcast(userID, snap)
	return nil
}

// buildSnapshot assembles the active challenge (with its newest feed
// page) and the completed history. An active challenge whose window has
// closed is archived on sight.
func (s *service) buildSnapshot(ctx context.Context, userID string) (Snapshot, error) {
	active, err := s.challengeRepo.GetActiveChallenge(ctx, &challengeRepo.GetActiveChallengeInput{
		CreatorID: userID,
	})
	if err != nil {
		if !errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return Snapshot{}, err
		}
		active = nil
	}

	if active != nil && active.IsExpired(s.clock.Now()) {
		err = s.challengeRepo.ArchiveChallenge(ctx, &challengeRepo.ArchiveChallengeInput{
			ChallengeID: active.ID,
		})
		if err != nil {
			return Snapshot{}, err
		}
		active = nil
	}

	if active != nil {
		events, err := s.eventRepo.GetRecentEvents(ctx, &eventRepo.GetRecentEventsInput{
			ChallengeID: active.ID,
			Limit:       s.config.EventPageSize,
		})
		if err != nil {
			return Snapshot{}, err
		}
		active.RecentEvents = events.Events
	}

	completed, err := s.challengeRepo.GetCompletedChallenges(ctx, &challengeRepo.GetCompletedChallengesInput{
		UserID: userID,
	})
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		ActiveChallenge:     active,
		CompletedChallenges: completed.Challenges,
	}, nil
}

// broadcast pushes a snapshot to one user's observers without blocking
// on any of them. It runs under the exclusive lock, so publishes are
// serialized: a stale snapshot can never land after a newer one.
func (s *service) broadcast(userID string, snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers[userID] {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and replace it with the new one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

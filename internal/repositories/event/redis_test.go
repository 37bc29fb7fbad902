package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/formfighter/ringside/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// seedEvents writes n events one minute apart, oldest first, and
// returns them newest first.
func (s *RedisRepositoryTestSuite) seedEvents(challengeID string, n int) []*models.ChallengeEvent {
	events := make([]*models.ChallengeEvent, 0, n)
	for i := 0; i < n; i++ {
		ev := &models.ChallengeEvent{
			ID:          fmt.Sprintf("event-%03d", i),
			ChallengeID: challengeID,
			Type:        models.EventTypeScore,
			UserName:    "Test Player",
			Details:     fmt.Sprintf("round %d", i),
			Timestamp:   s.testNow.Add(time.Duration(i) * time.Minute),
		}

		err := s.repo.AddEvent(context.Background(), &AddEventInput{Event: ev})
		s.Require().NoError(err)

		events = append([]*models.ChallengeEvent{ev}, events...)
	}
	return events
}

func (s *RedisRepositoryTestSuite) TestGetRecentEventsNewestFirst() {
	seeded := s.seedEvents("test-challenge-id", 5)

	out, err := s.repo.GetRecentEvents(context.Background(), &GetRecentEventsInput{
		ChallengeID: "test-challenge-id",
		Limit:       15,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 5)

	for i, ev := range out.Events {
		s.Equal(seeded[i].ID, ev.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestGetRecentEventsHonorsLimit() {
	s.seedEvents("test-challenge-id", 20)

	out, err := s.repo.GetRecentEvents(context.Background(), &GetRecentEventsInput{
		ChallengeID: "test-challenge-id",
		Limit:       15,
	})
	s.Require().NoError(err)
	s.Len(out.Events, 15)

	// The newest event is first
	s.Equal("event-019", out.Events[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentEventsEmptyChallenge() {
	out, err := s.repo.GetRecentEvents(context.Background(), &GetRecentEventsInput{
		ChallengeID: "empty-challenge-id",
		Limit:       15,
	})
	s.Require().NoError(err)
	s.Empty(out.Events)
}

func (s *RedisRepositoryTestSuite) TestGetEventsBeforeIsStrictlyOlder() {
	seeded := s.seedEvents("test-challenge-id", 5)

	// Cursor at the middle event: only the two older ones come back,
	// never the cursor event itself.
	cursor := seeded[2]

	out, err := s.repo.GetEventsBefore(context.Background(), &GetEventsBeforeInput{
		ChallengeID: "test-challenge-id",
		Before:      cursor.Timestamp,
		Limit:       15,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 2)

	for _, ev := range out.Events {
		s.True(ev.Timestamp.Before(cursor.Timestamp))
	}
	s.Equal(seeded[3].ID, out.Events[0].ID)
	s.Equal(seeded[4].ID, out.Events[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetEventsBeforePaginatesMonotonically() {
	s.seedEvents("test-challenge-id", 40)

	cursor := s.testNow.Add(time.Duration(40) * time.Minute)
	seen := make(map[string]struct{})

	for page := 0; page < 3; page++ {
		out, err := s.repo.GetEventsBefore(context.Background(), &GetEventsBeforeInput{
			ChallengeID: "test-challenge-id",
			Before:      cursor,
			Limit:       15,
		})
		s.Require().NoError(err)

		for _, ev := range out.Events {
			// Every event is strictly older than the cursor and never repeated
			s.True(ev.Timestamp.Before(cursor))
			_, dup := seen[ev.ID]
			s.False(dup, "event %s returned twice", ev.ID)
			seen[ev.ID] = struct{}{}
		}

		if len(out.Events) == 0 {
			break
		}
		cursor = out.Events[len(out.Events)-1].Timestamp
	}

	s.Len(seen, 40)
}

func (s *RedisRepositoryTestSuite) TestAddEventRejectsIncompleteEvent() {
	err := s.repo.AddEvent(context.Background(), &AddEventInput{
		Event: &models.ChallengeEvent{
			ID:          "",
			ChallengeID: "test-challenge-id",
			Timestamp:   s.testNow,
		},
	})
	s.Require().Error(err)

	err = s.repo.AddEvent(context.Background(), &AddEventInput{
		Event: &models.ChallengeEvent{
			ID:          "event-000",
			ChallengeID: "test-challenge-id",
		},
	})
	s.Require().Error(err)
}

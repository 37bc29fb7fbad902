package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formfighter/ringside/internal/models"
)

func event(ts time.Time) *models.ChallengeEvent {
	return &models.ChallengeEvent{
		ID:        "event-id",
		Type:      models.EventTypeScore,
		Timestamp: ts,
	}
}

func TestGroupEventsBucketsByAge(t *testing.T) {
	now := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)

	events := []*models.ChallengeEvent{
		event(now.Add(-30 * time.Second)),
		event(now.Add(-5 * time.Minute)),
		event(now.Add(-90 * time.Minute)),
		event(now.Add(-48 * time.Hour)),
	}

	groups := GroupEvents(now, events)
	require.Len(t, groups, 4)

	assert.Equal(t, "Just now", groups[0].Label)
	assert.Equal(t, "5m ago", groups[1].Label)
	assert.Equal(t, "1h ago", groups[2].Label)
	assert.Equal(t, "Fri, Aug 8", groups[3].Label)

	for _, g := range groups {
		assert.Len(t, g.Events, 1)
	}
}

func TestGroupEventsKeepsOrderWithinGroup(t *testing.T) {
	now := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)

	first := event(now.Add(-5 * time.Minute))
	second := event(now.Add(-5*time.Minute - 20*time.Second))
	third := event(now.Add(-2 * time.Hour))

	groups := GroupEvents(now, []*models.ChallengeEvent{first, second, third})
	require.Len(t, groups, 2)

	require.Len(t, groups[0].Events, 2)
	assert.Same(t, first, groups[0].Events[0])
	assert.Same(t, second, groups[0].Events[1])

	assert.Equal(t, "2h ago", groups[1].Label)
}

func TestGroupEventsIsDeterministic(t *testing.T) {
	now := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)

	events := []*models.ChallengeEvent{
		event(now.Add(-10 * time.Second)),
		event(now.Add(-3 * time.Minute)),
		event(now.Add(-3*time.Minute - 30*time.Second)),
		event(now.Add(-7 * time.Hour)),
		event(now.Add(-72 * time.Hour)),
	}

	first := GroupEvents(now, events)
	second := GroupEvents(now, events)
	assert.Equal(t, first, second)
}

func TestGroupEventsEmptyInput(t *testing.T) {
	now := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)

	groups := GroupEvents(now, nil)
	assert.Empty(t, groups)
}

func TestRelativeLabelBoundaries(t *testing.T) {
	now := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{name: "under a minute", ts: now.Add(-59 * time.Second), want: "Just now"},
		{name: "exactly one minute", ts: now.Add(-time.Minute), want: "1m ago"},
		{name: "under an hour", ts: now.Add(-59 * time.Minute), want: "59m ago"},
		{name: "exactly one hour", ts: now.Add(-time.Hour), want: "1h ago"},
		{name: "under a day", ts: now.Add(-23 * time.Hour), want: "23h ago"},
		{name: "a day or more", ts: now.Add(-24 * time.Hour), want: "Sat, Aug 9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, relativeLabel(now, tc.ts))
		})
	}
}

package feed

import (
	"fmt"
	"time"

	"github.com/formfighter/ringside/internal/models"
)

// Group is a run of feed events sharing a human-relative time label
type Group struct {
	// Label is the display bucket, e.g. "Just now" or "5m ago"
	Label string

	// Events are the group's members in their original order
	Events []*models.ChallengeEvent
}

// GroupEvents buckets events into human-relative time groups. The label
// is computed per event against the given now, so membership shifts as
// now advances. The input is expected newest first; groups come out
// ordered by their most recent member, descending, and events keep
// their input order within a group.
func GroupEvents(now time.Time, events []*models.ChallengeEvent) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, ev := range events {
		label := relativeLabel(now, ev.Timestamp)

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}

	return groups
}

// relativeLabel renders an event's age in whole elapsed units: under a
// minute "Just now", under an hour minutes, under a day hours, anything
// older the event's calendar day.
func relativeLabel(now, ts time.Time) string {
	elapsed := now.Sub(ts)

	minutes := int(elapsed.Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := int(elapsed.Hours())
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	return ts.Format("Mon, Jan 2")
}

package models

import (
	"time"
)

// Participant represents one competitor within a challenge
type Participant struct {
	// ID is the user identity of the participant
	ID string

	// Name is the display name of the participant
	Name string

	// FinalScore is the ranking value used for leaderboard ordering,
	// updated monotonically as score events arrive
	FinalScore float64

	// TotalJabs is the running count of jabs reported for this participant
	TotalJabs int

	// AverageScore is the running mean of all reported round scores
	AverageScore float64

	// Rounds is the number of score reports behind AverageScore
	Rounds int

	// InviteCount is how many joins this participant has referred
	InviteCount int

	// JoinedAt is when the participant's join event was processed
	JoinedAt time.Time
}

package models

// LeaderboardEntry represents one participant's standing in a challenge
type LeaderboardEntry struct {
	// Rank is the 1-based position, best score first
	Rank int

	// UserID is the identity of the participant
	UserID string

	// UserName is the display name of the participant
	UserName string

	// FinalScore is the ranking value
	FinalScore float64

	// TotalJabs is the participant's jab count
	TotalJabs int

	// AverageScore is the participant's running mean round score
	AverageScore float64
}

// Leaderboard represents the current standings in a challenge
type Leaderboard struct {
	// ChallengeID is the challenge these standings are for
	ChallengeID string

	// Entries contains one entry per participant, FinalScore descending.
	// Participants with equal scores keep their enrollment order.
	Entries []*LeaderboardEntry
}

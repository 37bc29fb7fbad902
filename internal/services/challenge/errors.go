package challenge

// ChallengeError is a custom error type for challenge-related errors
type ChallengeError string

// Error implements the error interface
func (e ChallengeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyInChallenge  ChallengeError = "user already has an active challenge"
	ErrInvalidChallenge    ChallengeError = "challenge does not exist or is no longer active"
	ErrParticipantNotFound ChallengeError = "participant not found in challenge"
	ErrNotListening        ChallengeError = "no realtime subscription is established"
	ErrNilConfig           ChallengeError = "config cannot be nil"
	ErrNilChallengeRepo    ChallengeError = "challenge repository cannot be nil"
	ErrNilEventRepo        ChallengeError = "event repository cannot be nil"
	ErrNilClock            ChallengeError = "clock cannot be nil"
	ErrNilUUIDGenerator    ChallengeError = "UUID generator cannot be nil"
)

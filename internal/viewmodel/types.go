package viewmodel

import (
	"time"

	"github.com/formfighter/ringside/internal/identity"
	"github.com/formfighter/ringside/internal/models"
	"github.com/formfighter/ringside/internal/notify"
	"github.com/formfighter/ringside/internal/services/challenge"
)

// Config holds configuration for the challenge view-model
type Config struct {
	// Service dependencies
	ChallengeService challenge.Service
	Identity         identity.Provider

	// Bus, when set, triggers a refresh whenever an open-challenge
	// notification is published
	Bus *notify.Bus

	// ToastDuration is how long a toast stays visible; defaults to 3s
	ToastDuration time.Duration
}

// Toast is a transient, auto-dismissing status message
type Toast struct {
	// Message is the display text
	Message string

	// Visible reports whether the toast is currently shown
	Visible bool
}

// State is the published view state. Reads return a copy taken on the
// view-model's own execution context.
type State struct {
	// ActiveChallenge is the user's running challenge; nil is a valid
	// state meaning none is active
	ActiveChallenge *models.Challenge

	// CompletedChallenges is the user's archive, newest first
	CompletedChallenges []*models.Challenge

	// IsLoading reports an in-flight create or invite call
	IsLoading bool

	// Err is the most recent failure surfaced for display
	Err error

	// Toast is the current transient status message
	Toast Toast

	// IsLoadingMoreEvents guards feed pagination against re-entry
	IsLoadingMoreEvents bool

	// HasMoreEvents reports whether older feed pages may remain
	HasMoreEvents bool
}

package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// Scheme is the app's custom URL scheme
	Scheme = "formfighter"

	// challengeHost is the deep-link host for challenge invites
	challengeHost = "challenge"

	// referrerParam carries the inviting participant's ID
	referrerParam = "ref"
)

// ErrNotChallengeLink is returned when a URL is not a challenge deep link
var ErrNotChallengeLink = errors.New("not a challenge deep link")

// Link is a parsed challenge deep link
type Link struct {
	// ChallengeID is the challenge the link points at
	ChallengeID string

	// ReferrerID is the participant who shared the link, if present
	ReferrerID string
}

// Build renders a shareable challenge link, formfighter://challenge/{id}.
func Build(challengeID string) string {
	return fmt.Sprintf("%s://%s/%s", Scheme, challengeHost, challengeID)
}

// BuildWithReferrer renders a challenge link carrying the sharer's ID
// as a ref query parameter.
func BuildWithReferrer(challengeID, referrerID string) string {
	if referrerID == "" {
		return Build(challengeID)
	}
	return fmt.Sprintf("%s?%s=%s", Build(challengeID), referrerParam, url.QueryEscape(referrerID))
}

// Parse recovers the challenge ID and optional referrer ID from a
// challenge deep link.
func Parse(raw string) (*Link, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deep link: %w", err)
	}

	if u.Scheme != Scheme || u.Host != challengeHost {
		return nil, ErrNotChallengeLink
	}

	challengeID := strings.Trim(u.Path, "/")
	if challengeID == "" || strings.Contains(challengeID, "/") {
		return nil, ErrNotChallengeLink
	}

	return &Link{
		ChallengeID: challengeID,
		ReferrerID:  u.Query().Get(referrerParam),
	}, nil
}

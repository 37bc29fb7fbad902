package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	assert.Equal(t, "formfighter://challenge/abc123", Build("abc123"))
}

func TestBuildWithReferrer(t *testing.T) {
	assert.Equal(t, "formfighter://challenge/abc123?ref=user-42", BuildWithReferrer("abc123", "user-42"))
}

func TestBuildWithReferrerEmptyOmitsParam(t *testing.T) {
	assert.Equal(t, "formfighter://challenge/abc123", BuildWithReferrer("abc123", ""))
}

func TestParseRoundTrip(t *testing.T) {
	link, err := Parse(Build("abc123"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", link.ChallengeID)
	assert.Empty(t, link.ReferrerID)
}

func TestParseRoundTripWithReferrer(t *testing.T) {
	link, err := Parse(BuildWithReferrer("abc123", "user 42"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", link.ChallengeID)
	assert.Equal(t, "user 42", link.ReferrerID)
}

func TestParseRejectsForeignLinks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "wrong scheme", raw: "https://challenge/abc123"},
		{name: "wrong host", raw: "formfighter://profile/abc123"},
		{name: "missing challenge ID", raw: "formfighter://challenge/"},
		{name: "extra path segment", raw: "formfighter://challenge/abc123/extra"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			assert.ErrorIs(t, err, ErrNotChallengeLink)
		})
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_MatchesIdentity(t *testing.T) {
	req := Request{
		RequesterEmail: "guest@example.com",
		RequesterPhone: "+79990001122",
	}

	assert.True(t, req.MatchesIdentity("guest@example.com"))
	assert.True(t, req.MatchesIdentity("+79990001122"))
	assert.False(t, req.MatchesIdentity("other@example.com"))
	assert.False(t, req.MatchesIdentity(""))
}

func TestDateKey_RoundTrip(t *testing.T) {
	day := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	key := FormatDateKey(day)
	assert.Equal(t, "2026-03-07", key)

	parsed, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.Equal(t, key, FormatDateKey(parsed))

	_, err = ParseDateKey("07.03.2026")
	assert.Error(t, err)
}

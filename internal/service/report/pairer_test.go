package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 2, hour, min, 0, 0, time.UTC)
}

func TestPairSessions_InterleavedPairs(t *testing.T) {
	// check-ins [a,b], check-outs [c,d] with a<c<b<d pair as (a,c), (b,d)
	a, c, b, d := at(9, 0), at(12, 0), at(13, 0), at(17, 0)

	sessions, total := pairSessions([]time.Time{a, b}, []time.Time{c, d})

	require.Len(t, sessions, 2)
	assert.Equal(t, a, sessions[0].checkIn)
	assert.Equal(t, c, *sessions[0].checkOut)
	assert.Equal(t, b, sessions[1].checkIn)
	assert.Equal(t, d, *sessions[1].checkOut)
	assert.Equal(t, c.Sub(a)+d.Sub(b), total)
}

func TestPairSessions_StrayCheckoutWithoutCheckIn(t *testing.T) {
	sessions, total := pairSessions(nil, []time.Time{at(8, 0)})

	assert.Empty(t, sessions)
	assert.Equal(t, time.Duration(0), total)
}

func TestPairSessions_StrayCheckoutBeforeFirstCheckIn(t *testing.T) {
	// The 07:00 checkout predates every check-in and is discarded, not
	// matched into a negative session.
	sessions, total := pairSessions(
		[]time.Time{at(9, 0)},
		[]time.Time{at(7, 0), at(17, 0)},
	)

	require.Len(t, sessions, 1)
	assert.Equal(t, at(9, 0), sessions[0].checkIn)
	assert.Equal(t, at(17, 0), *sessions[0].checkOut)
	assert.Equal(t, 8*time.Hour, total)
}

func TestPairSessions_CheckoutEqualToCheckInIsStray(t *testing.T) {
	sessions, total := pairSessions([]time.Time{at(9, 0)}, []time.Time{at(9, 0)})

	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].checkOut)
	assert.Equal(t, time.Duration(0), total)
}

func TestPairSessions_TrailingCheckInIsOpen(t *testing.T) {
	// check-ins [a,b], check-outs [c] with c>a: one closed session (a,c)
	// and an open session at b contributing zero.
	a, c, b := at(9, 0), at(12, 0), at(13, 0)

	sessions, total := pairSessions([]time.Time{a, b}, []time.Time{c})

	require.Len(t, sessions, 2)
	assert.Equal(t, c, *sessions[0].checkOut)
	assert.Equal(t, b, sessions[1].checkIn)
	assert.Nil(t, sessions[1].checkOut)
	assert.Equal(t, 3*time.Hour, total)
	assert.Equal(t, time.Duration(0), sessions[1].duration())
}

func TestPairSessions_Empty(t *testing.T) {
	sessions, total := pairSessions(nil, nil)
	assert.Empty(t, sessions)
	assert.Equal(t, time.Duration(0), total)

	sessions, total = pairSessions([]time.Time{at(9, 0)}, nil)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].checkOut)
	assert.Equal(t, time.Duration(0), total)
}

func TestPairSessions_ManyCycles(t *testing.T) {
	var checkIns, checkOuts []time.Time
	for h := 8; h < 18; h += 2 {
		checkIns = append(checkIns, at(h, 0))
		checkOuts = append(checkOuts, at(h+1, 0))
	}

	sessions, total := pairSessions(checkIns, checkOuts)

	require.Len(t, sessions, 5)
	assert.Equal(t, 5*time.Hour, total)
	for _, s := range sessions {
		require.NotNil(t, s.checkOut)
		assert.Equal(t, time.Hour, s.duration())
	}
}

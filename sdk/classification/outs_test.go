package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutsTo(t *testing.T) {
	cache, err := NewOutsCache(16)
	require.NoError(t, err)

	h := mustHand(t, "7s5s", "Ac8s6s", WithOutsCache(cache))
	flush, ok := LookupFlag("is_flush")
	require.True(t, ok)

	// Nine spades remain; 4s and 9s make a straight flush instead.
	assert.Equal(t, 7, h.OutsTo(flush))
	assert.Equal(t, 1, cache.Len())

	assert.Equal(t, 7, h.OutsTo(flush), "memoized count is unchanged")
	assert.Equal(t, 1, cache.Len())

	same := mustHand(t, "7s5s", "6s8sAc", WithOutsCache(cache))
	assert.Equal(t, 7, same.OutsTo(flush))
	assert.Equal(t, 1, cache.Len(), "board order does not change the key")

	swapped := mustHand(t, "5s7s", "Ac8s6s", WithOutsCache(cache))
	assert.Equal(t, 7, swapped.OutsTo(flush))
	assert.Equal(t, 2, cache.Len(), "hole order is part of the key")

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestOutsToUnnamedFlag(t *testing.T) {
	cache, err := NewOutsCache(16)
	require.NoError(t, err)

	h := mustHand(t, "9c8d", "7d5c2s", WithOutsCache(cache))
	anyPair := Flag{Fn: func(h *Hand) bool { return h.IsOnePair() }}

	// Any of the three remaining cards of each hole or board rank.
	assert.Equal(t, 15, h.OutsTo(anyPair))
	assert.Equal(t, 0, cache.Len())
}

func TestOutsToCallerFlagSharingRegisteredName(t *testing.T) {
	cache, err := NewOutsCache(16)
	require.NoError(t, err)

	h := mustHand(t, "9c8d", "7d5c2s", WithOutsCache(cache))
	straight, ok := LookupFlag("is_straight")
	require.True(t, ok)
	assert.Equal(t, 8, h.OutsTo(straight))
	assert.Equal(t, 1, cache.Len())

	pairing := Flag{Name: "is_straight", Fn: (*Hand).IsOnePair}
	assert.Equal(t, 15, h.OutsTo(pairing))
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 8, h.OutsTo(straight))
}

func TestOutsToTurnAndRiver(t *testing.T) {
	straight, ok := LookupFlag("is_straight")
	require.True(t, ok)

	turn := mustHand(t, "9c8d", "7d5c2sKh")
	assert.Equal(t, 4, turn.OutsTo(straight))

	river := mustHand(t, "9c8d", "7d5c2sKh6h")
	assert.True(t, river.IsStraight())
	assert.Equal(t, 0, river.OutsTo(straight))
}

func TestNewOutsCacheRejectsBadSize(t *testing.T) {
	_, err := NewOutsCache(0)
	assert.Error(t, err)
}

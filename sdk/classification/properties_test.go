package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handshapes/internal/randutil"
	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/evaluator"
)

// randomHands deals n hands with flop, turn and river boards from a seeded
// deck.
func randomHands(t *testing.T, seed int64, n int, opts ...HandOption) []*Hand {
	t.Helper()
	deck := poker.NewDeck(randutil.New(seed))
	hands := make([]*Hand, 0, n)
	for i := range n {
		deck.Reset()
		hole := deck.Deal(2)
		board := deck.Deal(3 + i%3)
		h, err := NewHand(hole, board, opts...)
		require.NoError(t, err)
		hands = append(hands, h)
	}
	return hands
}

func TestMadeHandClassesPartition(t *testing.T) {
	classes := []func(*Hand) bool{
		(*Hand).IsStraightFlush, (*Hand).IsQuads, (*Hand).IsFullHouse,
		(*Hand).IsFlush, (*Hand).IsStraight, (*Hand).IsTrips, (*Hand).IsSet,
		(*Hand).IsTwoPair, (*Hand).IsOnePair, (*Hand).IsHighCard,
	}

	for _, name := range evaluator.Names() {
		t.Run(name, func(t *testing.T) {
			ev, err := evaluator.New(name)
			require.NoError(t, err)
			for _, h := range randomHands(t, 1, 500, WithEvaluator(ev)) {
				held := 0
				for _, class := range classes {
					if class(h) {
						held++
					}
				}
				require.Equal(t, 1, held, h.String())
			}
		})
	}
}

func TestPocketPairPositions(t *testing.T) {
	for _, h := range randomHands(t, 2, 1000) {
		if !h.PairInHand() {
			continue
		}
		n := 0
		for _, held := range []bool{h.HasTopPair(), h.HasBottomPair(), h.HasMiddlePair()} {
			if held {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1, h.String())
		if n > 0 {
			assert.False(t, h.IsSet() || h.IsTrips(), h.String())
		}
	}
}

func TestNoFlushDrawOnMadeFlush(t *testing.T) {
	for _, h := range randomHands(t, 3, 2000) {
		if !h.IsFlush() && !h.IsStraightFlush() {
			continue
		}
		assert.False(t, h.HasFlushDraw(), h.String())
		assert.False(t, h.HasBackdoorFlush(), h.String())
		assert.Equal(t, "hh", suitsOf(h.HDSC()), h.String())
	}
}

func TestOutsBoundedAndStable(t *testing.T) {
	cache, err := NewOutsCache(DefaultOutsCacheSize)
	require.NoError(t, err)

	flags := []string{"is_flush", "is_straight", "is_two_pair"}
	for _, h := range randomHands(t, 4, 60, WithOutsCache(cache)) {
		for _, name := range flags {
			f, ok := LookupFlag(name)
			require.True(t, ok)
			first := h.OutsTo(f)
			assert.Equal(t, first, h.OutsTo(f), "%s %s", name, h)
			assert.LessOrEqual(t, first, len(h.RestOfTheDeck()))
		}
	}
}

func TestHDSCDeterministic(t *testing.T) {
	for _, h := range randomHands(t, 5, 300) {
		again, err := NewHand(h.hole[:], h.board)
		require.NoError(t, err)

		out := h.HDSC()
		assert.Equal(t, out, again.HDSC(), h.String())
		assert.Equal(t, h.TrueFlags(), again.TrueFlags(), h.String())
		for i := range out {
			assert.Equal(t, h.hole[i].Rank(), out[i].Rank(), h.String())
		}
	}
}

func suitsOf(cards [2]poker.Card) string {
	return string([]byte{poker.SuitChar(cards[0].Suit()), poker.SuitChar(cards[1].Suit())})
}

package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/evaluator"
)

// mustHand parses a hand for tests.
func mustHand(t testing.TB, hole, board string, opts ...HandOption) *Hand {
	t.Helper()
	h, err := ParseHand(hole, board, opts...)
	require.NoError(t, err, "%s on %s", hole, board)
	return h
}

func TestNewHandInvalid(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
	}{
		{"nothing", "", ""},
		{"no board", "QhQs", ""},
		{"no hole cards", "", "QhQsKh"},
		{"duplicate card", "QhQs", "Qh2s3s"},
		{"three hole cards", "QhQsKh", "Qd2s3s"},
		{"six board cards", "QhQs", "Qd2s3sKh5sAs"},
		{"three hole cards and short board", "QhQsKh", "Qd2s"},
		{"short board", "QhQs", "4c2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHand(tt.hole, tt.board)
			assert.ErrorIs(t, err, ErrInvalidHand)
		})
	}

	_, err := ParseHand("QhQx", "2s3s4s")
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = NewHand([]poker.Card{255, poker.NewCard(poker.Two, poker.Clubs)}, poker.MustParseCards("3s4s5s"))
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestNewHandEvaluators(t *testing.T) {
	for _, name := range evaluator.Names() {
		t.Run(name, func(t *testing.T) {
			ev, err := evaluator.New(name)
			require.NoError(t, err)

			royal := mustHand(t, "TsJs", "QsKsAs", WithEvaluator(ev))
			assert.Equal(t, 1, royal.RankClass())
			assert.Same(t, ev, royal.Evaluator())
		})
	}

	royal := mustHand(t, "TsJs", "QsKsAs")
	assert.Equal(t, 1, royal.RankClass())
	assert.NotNil(t, royal.Evaluator())
}

func TestHandDerivedState(t *testing.T) {
	h := mustHand(t, "KsJd", "JsQs2h")

	assert.Equal(t, [2]int{11, 13}, h.HandRanks())
	assert.Equal(t, []int{2, 11, 12}, h.BoardRanks())
	assert.Equal(t, 8, h.RankClass())
	assert.Equal(t, "[Ks Jd] on JsQs2h", h.String())
	assert.Equal(t, "2hJsQs", h.Flop().String())
	assert.Len(t, h.RestOfTheDeck(), 47)

	board := h.Board()
	board[0] = poker.NewCard(poker.Ace, poker.Clubs)
	assert.Equal(t, "JsQs2h", poker.FormatCards(h.Board()), "Board returns a copy")
}

func TestMadeHandCategories(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		check func(*Hand) bool
	}{
		{"straight flush", "TsJs", "QsKsAs", (*Hand).IsStraightFlush},
		{"quads", "9c9d", "9h9sKd", (*Hand).IsQuads},
		{"full house", "TsTd", "Tc4d4h", (*Hand).IsFullHouse},
		{"flush", "Ac3c", "KcTc2c", (*Hand).IsFlush},
		{"straight", "9c8d", "7h6s5d", (*Hand).IsStraight},
		{"trips", "7cKs", "7d7h2c", (*Hand).IsTrips},
		{"set", "TsTd", "Tc4d3h", (*Hand).IsSet},
		{"two pair", "AcTd", "As3dTc", (*Hand).IsTwoPair},
		{"one pair", "KsJd", "JsQs2h", (*Hand).IsOnePair},
		{"high card", "AsKd", "Td3s2c", (*Hand).IsHighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.hole, tt.board)
			assert.True(t, tt.check(h))

			held := 0
			for _, other := range tests {
				if other.check(h) {
					held++
				}
			}
			assert.Equal(t, 1, held, "exactly one category holds")
		})
	}
}

func TestPairInHand(t *testing.T) {
	assert.True(t, mustHand(t, "TsTd", "2d3c5h").PairInHand())
	assert.False(t, mustHand(t, "5d6d", "2d3c5h").PairInHand())

	// The pocket pair is still a pocket pair when the board pairs, but the
	// evaluator now sees two pair rather than one.
	paired := mustHand(t, "TsTd", "AsAd3c")
	assert.True(t, paired.PairInHand())
	assert.False(t, paired.IsOnePair())
	assert.True(t, paired.IsTwoPair())
}

func TestPairedBoard(t *testing.T) {
	assert.True(t, mustHand(t, "TsTd", "AsAd3c").PairedBoard())
	assert.False(t, mustHand(t, "TsTd", "AsKd3c").PairedBoard())
	assert.False(t, mustHand(t, "TsTd", "AsAdAc").PairedBoard(), "trips on the flop")

	// Turn and river: any repeated rank.
	assert.True(t, mustHand(t, "TsTd", "AsKd3c3h").PairedBoard())
	assert.True(t, mustHand(t, "TsTd", "AsKd3c3h3s").PairedBoard(), "trips count from the turn")
	assert.False(t, mustHand(t, "TsTd", "AsKd3c4h9s").PairedBoard())
}

func TestSuited(t *testing.T) {
	assert.True(t, mustHand(t, "AsKs", "2d3c5h").Suited())
	assert.False(t, mustHand(t, "AsKd", "2d3c5h").Suited())
}

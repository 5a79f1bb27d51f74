package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixture struct {
	hole, board string
}

// onlyHolds asserts check is true for the named fixture and false for every
// other fixture in the group.
func onlyHolds(t *testing.T, group map[string]fixture, want string, check func(*Hand) bool) {
	t.Helper()
	for name, f := range group {
		h := mustHand(t, f.hole, f.board)
		assert.Equal(t, name == want, check(h), "%s: %s", name, h)
	}
}

var onePairHands = map[string]fixture{
	"over":         {"QhQs", "2s3c8d"},
	"tptk":         {"AsKh", "KdTc2c"},
	"top":          {"3sKh", "KdTc2c"},
	"under top":    {"JsJh", "KdTc2c"},
	"mptk":         {"AsTh", "KdTc2c"},
	"under middle": {"8s8h", "KdTc2c"},
	"bottom":       {"3s2h", "KdTc2c"},
	"under":        {"2s2h", "KdTc3c"},
}

func TestOnePairPositions(t *testing.T) {
	for name, f := range onePairHands {
		assert.True(t, mustHand(t, f.hole, f.board).IsOnePair(), name)
	}

	tests := []struct {
		name  string
		want  string
		check func(*Hand) bool
	}{
		{"overpair", "over", (*Hand).HasOverpair},
		{"under top pair", "under top", (*Hand).HasUnderTopPair},
		{"middle pair", "mptk", (*Hand).HasMiddlePair},
		{"under middle pair", "under middle", (*Hand).HasUnderMiddlePair},
		{"bottom pair", "bottom", (*Hand).HasBottomPair},
		{"under pair", "under", (*Hand).HasUnderPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onlyHolds(t, onePairHands, tt.want, tt.check)
		})
	}
}

func TestMiddlePairOnPairedFlop(t *testing.T) {
	h := mustHand(t, "AhKd", "2c2d7s")
	assert.True(t, h.IsOnePair())
	assert.False(t, h.HasTopPair())
	assert.False(t, h.HasBottomPair())
	assert.True(t, h.HasMiddlePair(), "the board pair is neither top nor bottom")

	assert.True(t, mustHand(t, "AhKd", "2c7d7s").HasMiddlePair())
	assert.False(t, mustHand(t, "Ah2d", "2c2s7s").HasMiddlePair(), "trips")
	assert.False(t, mustHand(t, "7hKd", "2c2d7s").HasMiddlePair(), "two pair")
}

func TestTopPair(t *testing.T) {
	assert.True(t, mustHand(t, "AsKh", "KdTc2c").HasTopPair())
	assert.True(t, mustHand(t, "3sKh", "KdTc2c").HasTopPair())
	assert.False(t, mustHand(t, "AsTh", "KdTc2c").HasTopPair())

	h := mustHand(t, "KsJd", "JsQs2h")
	assert.False(t, h.HasTopPair())
	assert.False(t, h.HasOverpair())

	// Top pair plus a paired board is two pair.
	paired := mustHand(t, "AsKh", "KdTcTs")
	assert.True(t, paired.IsTwoPair())
	assert.False(t, paired.HasTopPair())
	assert.False(t, paired.HasOverpair())
}

var twoPairHands = map[string]fixture{
	"over to paired":  {"QhQs", "ThTd3c"},
	"top two":         {"AcTd", "As3dTc"},
	"top and bottom":  {"Ac5d", "5cTdAs"},
	"bottom two":      {"4c5d", "5cTd4s"},
	"under high pair": {"7c7d", "Td4sTs"},
	"over low pair":   {"7c7d", "4d4sTs"},
	"under paired":    {"7c7d", "TdTsKs"},
}

func TestTwoPairPositions(t *testing.T) {
	for name, f := range twoPairHands {
		assert.True(t, mustHand(t, f.hole, f.board).IsTwoPair(), name)
	}

	tests := []struct {
		name  string
		want  string
		check func(*Hand) bool
	}{
		{"overpair to paired board", "over to paired", (*Hand).HasOverpairToPairedBoard},
		{"top two pair", "top two", (*Hand).HasTopTwoPair},
		{"top and bottom", "top and bottom", (*Hand).HasTopAndBottom},
		{"bottom two pair", "bottom two", (*Hand).HasBottomTwoPair},
		{"under high pair", "under high pair", (*Hand).HasUnderHighPair},
		{"over low pair", "over low pair", (*Hand).HasOverLowPair},
		{"under pair to paired", "under paired", (*Hand).HasUnderPairToPaired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onlyHolds(t, twoPairHands, tt.want, tt.check)
		})
	}
}

var setHands = map[string]fixture{
	"top":    {"TsTd", "Tc4d3h"},
	"middle": {"TsTd", "Tc4dAh"},
	"bottom": {"TsTd", "TcAdQh"},
}

func TestSetPositions(t *testing.T) {
	for name, f := range setHands {
		h := mustHand(t, f.hole, f.board)
		assert.True(t, h.IsSet(), name)
		assert.False(t, h.IsTrips(), name)
	}

	onlyHolds(t, setHands, "top", (*Hand).HasTopSet)
	onlyHolds(t, setHands, "middle", (*Hand).HasMiddleSet)
	onlyHolds(t, setHands, "bottom", (*Hand).HasBottomSet)

	full := mustHand(t, "TsTd", "Tc4d4h")
	assert.True(t, full.IsFullHouse())
	assert.False(t, full.IsSet())
	assert.False(t, full.HasTopSet())
}

func TestOvercards(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		n     int
	}{
		{"two overcards", "AsKd", "Td3s2c", 2},
		{"one over", "As9d", "Td3s2c", 1},
		{"none", "9s8d", "Td3s2c", 0},
		{"turn", "AsKd", "Td3s2cQh", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.hole, tt.board)
			assert.Equal(t, tt.n, h.NumberOfOvercards())
			assert.Equal(t, tt.n == 2, h.HasTwoOvercards())
			assert.Equal(t, tt.n == 1, h.HasOneOver())
		})
	}
}

func TestPositionsOnLongerBoards(t *testing.T) {
	// Top and bottom follow the highest and lowest board card.
	turn := mustHand(t, "Ah9c", "Kd9d2sAs")
	assert.True(t, turn.IsTwoPair())
	assert.False(t, turn.HasTopTwoPair(), "board K sits between the pairs")

	river := mustHand(t, "Kh3c", "Kd9d2s7s5h")
	assert.True(t, river.HasTopPair())
	assert.False(t, river.HasMiddlePair())

	bottom := mustHand(t, "Qh2c", "Kd9d2s7s5h")
	assert.True(t, bottom.HasBottomPair())

	middle := mustHand(t, "Ah9c", "Kd9d2s7s")
	assert.True(t, middle.IsOnePair())
	assert.False(t, middle.HasMiddlePair(), "middle pair is a flop shape")

	set := mustHand(t, "7h7c", "Kd9d2s7s")
	assert.True(t, set.HasMiddleSet())
	assert.False(t, set.HasTopSet())
	assert.False(t, set.HasBottomSet())
}

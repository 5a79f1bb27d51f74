package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handshapes/poker"
)

func TestBoardType(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		want   BoardType
		ranks  int
		suits  int
		paired bool
	}{
		{"trips", "QhQsQd", BoardTrips, 1, 3, false},
		{"paired rainbow", "2c2h8d", BoardPairedRainbow, 2, 3, true},
		{"paired suited", "QhQsKh", BoardPairedSuited, 2, 2, true},
		{"rainbow", "KsAd5c", BoardRainbow, 3, 3, false},
		{"two-tone", "2c9dAd", BoardTwoTone, 3, 2, false},
		{"monotone", "2h3h4h", BoardMonotone, 3, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBoard(tt.board)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Type())
			assert.Equal(t, tt.want, b.Type(), "type is stable across calls")
			assert.Equal(t, tt.ranks, b.UniqueRankCount())
			assert.Equal(t, tt.suits, b.UniqueSuitCount())
			assert.Equal(t, tt.paired, b.PairedBoard())
			assert.Equal(t, tt.name, b.Type().String())
		})
	}
}

func TestBoardInvalid(t *testing.T) {
	tests := []struct {
		name  string
		cards []poker.Card
	}{
		{"empty", nil},
		{"two cards", poker.MustParseCards("Qh2s")},
		{"four cards", poker.MustParseCards("Qh2s3s4s")},
		{"duplicate", poker.MustParseCards("QhQh2s")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}

	_, err := ParseBoard("QhQx2s")
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestBoardAccessors(t *testing.T) {
	b, err := ParseBoard("KsAd5c")
	require.NoError(t, err)

	assert.Equal(t, "5cKsAd", b.String())
	assert.Equal(t, []int{5, 13, 14}, b.Ranks())
	assert.Equal(t, "5KA", b.CharRanks())
	assert.Equal(t, "csd", b.Suits())
	assert.Equal(t, "cds", b.UniqueSuits())

	cards := b.Cards()
	cards[0] = poker.NewCard(poker.Two, poker.Clubs)
	assert.Equal(t, "5cKsAd", b.String(), "Cards returns a copy")

	same, err := ParseBoard("Ad5cKs")
	require.NoError(t, err)
	assert.True(t, b.Equal(same))

	other, err := ParseBoard("Ad5cKh")
	require.NoError(t, err)
	assert.False(t, b.Equal(other))
	assert.False(t, b.Equal(nil))
}

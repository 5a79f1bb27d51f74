// Package classification labels hold'em hands by made-hand strength, rank
// position relative to the board, and drawing potential, and maps every
// hand to a canonical suit pattern shared by strategically equivalent hands.
package classification

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/lox/handshapes/poker"
)

// BoardType is the structural class of a flop, derived from how many
// distinct ranks and suits it holds.
type BoardType int

const (
	BoardTrips          BoardType = iota + 1 // XXX
	BoardPairedRainbow                       // XXY, three suits
	BoardPairedSuited                        // XXY, two suits
	BoardRainbow                             // XYZ, three suits
	BoardTwoTone                             // XYZ, two suits
	BoardMonotone                            // XYZ, one suit
)

func (bt BoardType) String() string {
	switch bt {
	case BoardTrips:
		return "trips"
	case BoardPairedRainbow:
		return "paired rainbow"
	case BoardPairedSuited:
		return "paired suited"
	case BoardRainbow:
		return "rainbow"
	case BoardTwoTone:
		return "two-tone"
	case BoardMonotone:
		return "monotone"
	default:
		return "unknown"
	}
}

// Board is a three card flop, sorted ascending. It is immutable.
type Board struct {
	cards       [3]poker.Card
	uniqueRanks int
	uniqueSuits int
	boardType   BoardType
}

// NewBoard classifies a flop. It fails with ErrInvalidBoard unless given
// exactly three distinct cards.
func NewBoard(cards []poker.Card) (*Board, error) {
	if len(cards) != 3 {
		return nil, fmt.Errorf("%w: need 3 cards, got %d", ErrInvalidBoard, len(cards))
	}

	set := poker.NewHand(cards...)
	if set.CountCards() != 3 {
		return nil, fmt.Errorf("%w: duplicate card in %s", ErrInvalidBoard, poker.FormatCards(cards))
	}

	b := &Board{}
	copy(b.cards[:], cards)
	slices.Sort(b.cards[:])

	b.uniqueRanks = bits.OnesCount16(set.GetRankMask())
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		if set.GetSuitMask(suit) != 0 {
			b.uniqueSuits++
		}
	}
	b.boardType = flopType(b.uniqueRanks, b.uniqueSuits)
	return b, nil
}

// ParseBoard parses and classifies a flop such as "JsQs2h".
func ParseBoard(s string) (*Board, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	return NewBoard(cards)
}

func flopType(ranks, suits int) BoardType {
	switch {
	case ranks == 1:
		return BoardTrips
	case ranks == 2 && suits == 3:
		return BoardPairedRainbow
	case ranks == 2 && suits == 2:
		return BoardPairedSuited
	case ranks == 3 && suits == 3:
		return BoardRainbow
	case ranks == 3 && suits == 2:
		return BoardTwoTone
	case ranks == 3 && suits == 1:
		return BoardMonotone
	}
	panic(fmt.Sprintf("classification: unreachable flop shape: %d ranks, %d suits", ranks, suits))
}

// Type returns the flop's structural class.
func (b *Board) Type() BoardType {
	return b.boardType
}

// UniqueRankCount returns the number of distinct ranks on the flop.
func (b *Board) UniqueRankCount() int {
	return b.uniqueRanks
}

// UniqueSuitCount returns the number of distinct suits on the flop.
func (b *Board) UniqueSuitCount() int {
	return b.uniqueSuits
}

// PairedBoard reports whether exactly one rank repeats on the flop. Trips
// on board is not a paired board.
func (b *Board) PairedBoard() bool {
	return b.uniqueRanks == 2
}

// Cards returns the flop in ascending order.
func (b *Board) Cards() []poker.Card {
	return slices.Clone(b.cards[:])
}

// Ranks returns the flop's rank values (2-14) in ascending order.
func (b *Board) Ranks() []int {
	ranks := make([]int, len(b.cards))
	for i, c := range b.cards {
		ranks[i] = c.Value()
	}
	return ranks
}

// CharRanks returns the flop's rank characters in ascending order.
func (b *Board) CharRanks() string {
	chars := make([]byte, len(b.cards))
	for i, c := range b.cards {
		chars[i] = poker.RankChar(c.Value())
	}
	return string(chars)
}

// Suits returns the suit letter of each card, in card order.
func (b *Board) Suits() string {
	suits := make([]byte, len(b.cards))
	for i, c := range b.cards {
		suits[i] = poker.SuitChar(c.Suit())
	}
	return string(suits)
}

// UniqueSuits returns the distinct suit letters in clubs, diamonds, hearts,
// spades order.
func (b *Board) UniqueSuits() string {
	var sb strings.Builder
	set := poker.NewHand(b.cards[:]...)
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		if set.GetSuitMask(suit) != 0 {
			sb.WriteByte(poker.SuitChar(suit))
		}
	}
	return sb.String()
}

// Equal reports whether both flops hold the same cards.
func (b *Board) Equal(other *Board) bool {
	return other != nil && b.cards == other.cards
}

func (b *Board) String() string {
	return poker.FormatCards(b.cards[:])
}

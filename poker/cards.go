// Package poker provides the card primitives shared by the classifier:
// a compact card value, a bit-packed card set, deck enumeration and a
// mask-based hand evaluator.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Ranks, deuce through ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Card is a single playing card encoded as rank<<2 | suit. Numeric order is
// rank-major, so sorting cards sorts them by rank and then by suit.
type Card uint8

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(rank<<2 | suit&3)
}

// Rank returns the card rank, 0 for a deuce through 12 for an ace.
func (c Card) Rank() uint8 {
	return uint8(c) >> 2
}

// Suit returns the card suit (0-3).
func (c Card) Suit() uint8 {
	return uint8(c) & 3
}

// Value returns the conventional rank value, 2 through 14.
func (c Card) Value() int {
	return int(c.Rank()) + 2
}

// String returns the two character form, e.g. "As" or "Td".
func (c Card) String() string {
	if c.Rank() > Ace {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// bit returns the card's position inside a Hand bitset.
func (c Card) bit() Hand {
	return Hand(1) << (uint(c.Suit())*13 + uint(c.Rank()))
}

// SuitChar returns the lower case suit letter.
func SuitChar(suit uint8) byte {
	return suitChars[suit&3]
}

// RankChar returns the rank character for a rank value of 2 through 14.
func RankChar(value int) byte {
	if value < 2 || value > 14 {
		return '?'
	}
	return rankChars[value-2]
}

// ParseCard parses a two character card such as "As", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: must be 2 characters", s)
	}
	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("invalid card %q: unknown rank %q", s, s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a run of cards, e.g. "AsKd" or "As Kd Qh". Spaces and
// commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the two character forms of cards.
func FormatCards(cards []Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// Hand is a set of cards packed into a bitfield, one bit per card at
// suit*13 + rank.
type Hand uint64

// NewHand creates a card set from the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard adds a card to the set.
func (h *Hand) AddCard(c Card) {
	*h |= c.bit()
}

// HasCard reports whether the card is in the set.
func (h Hand) HasCard(c Card) bool {
	return h&c.bit() != 0
}

// CountCards returns the number of cards in the set.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask for one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(h>>(uint(suit)*13)) & 0x1FFF
}

// GetRankMask returns the 13-bit mask of ranks present in any suit.
func (h Hand) GetRankMask() uint16 {
	return h.GetSuitMask(Clubs) | h.GetSuitMask(Diamonds) |
		h.GetSuitMask(Hearts) | h.GetSuitMask(Spades)
}

// Cards returns the cards in ascending order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			c := NewCard(rank, suit)
			if h.HasCard(c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

// String returns the cards in ascending order.
func (h Hand) String() string {
	return FormatCards(h.Cards())
}

package classification

import (
	"fmt"
	"slices"

	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/evaluator"
)

// Hand is two hole cards on a flop, turn or river board, evaluated once at
// construction. It is immutable and safe for concurrent use.
type Hand struct {
	hole  [2]poker.Card
	board []poker.Card // as dealt
	flop  *Board
	known poker.Hand

	ev   evaluator.Evaluator
	outs *OutsCache

	rank       int
	rankClass  int
	handRanks  [2]int
	boardRanks []int
}

// HandOption configures a Hand.
type HandOption func(*Hand)

// WithEvaluator borrows ev for ranking the hand and every hand derived
// from it.
func WithEvaluator(ev evaluator.Evaluator) HandOption {
	return func(h *Hand) {
		h.ev = ev
	}
}

// WithOutsCache memoizes outs counts in c instead of the package cache.
func WithOutsCache(c *OutsCache) HandOption {
	return func(h *Hand) {
		h.outs = c
	}
}

// NewHand validates and evaluates a hand. It fails with ErrInvalidHand
// unless there are exactly two hole cards, three to five board cards, and
// no card appears twice.
func NewHand(hole, board []poker.Card, opts ...HandOption) (*Hand, error) {
	if len(hole) != 2 {
		return nil, fmt.Errorf("%w: need 2 hole cards, got %d", ErrInvalidHand, len(hole))
	}
	if len(board) < 3 || len(board) > 5 {
		return nil, fmt.Errorf("%w: need 3 to 5 board cards, got %d", ErrInvalidHand, len(board))
	}

	var known poker.Hand
	for _, c := range slices.Concat(hole, board) {
		if c.Rank() > poker.Ace {
			return nil, fmt.Errorf("%w: bad card value %d", ErrInvalidHand, uint8(c))
		}
		if known.HasCard(c) {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidHand, c)
		}
		known.AddCard(c)
	}

	flop, err := NewBoard(board[:3])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHand, err)
	}

	h := &Hand{
		hole:  [2]poker.Card{hole[0], hole[1]},
		board: slices.Clone(board),
		flop:  flop,
		known: known,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.ev == nil {
		h.ev = evaluator.NewNative()
	}
	if h.outs == nil {
		h.outs = defaultOutsCache
	}
	h.evaluate()
	return h, nil
}

// ParseHand builds a hand from card strings, e.g. ParseHand("KsJd", "JsQs2h").
func ParseHand(hole, board string, opts ...HandOption) (*Hand, error) {
	holeCards, err := poker.ParseCards(hole)
	if err != nil {
		return nil, fmt.Errorf("%w: hole: %w", ErrInvalidHand, err)
	}
	boardCards, err := poker.ParseCards(board)
	if err != nil {
		return nil, fmt.Errorf("%w: board: %w", ErrInvalidHand, err)
	}
	return NewHand(holeCards, boardCards, opts...)
}

func (h *Hand) evaluate() {
	h.rank = h.ev.Evaluate(slices.Concat(h.hole[:], h.board))
	h.rankClass = h.ev.RankClass(h.rank)

	h.handRanks = [2]int{h.hole[0].Value(), h.hole[1].Value()}
	if h.handRanks[0] > h.handRanks[1] {
		h.handRanks[0], h.handRanks[1] = h.handRanks[1], h.handRanks[0]
	}

	h.boardRanks = make([]int, len(h.board))
	for i, c := range h.board {
		h.boardRanks[i] = c.Value()
	}
	slices.Sort(h.boardRanks)
}

// withCard deals one more board card. The result is only valid when card
// is not already known.
func (h *Hand) withCard(card poker.Card) *Hand {
	child := &Hand{
		hole:  h.hole,
		board: append(slices.Clip(h.board), card),
		flop:  h.flop,
		known: h.known,
		ev:    h.ev,
		outs:  h.outs,
	}
	child.known.AddCard(card)
	child.evaluate()
	return child
}

// Hole returns the hole cards in the order given.
func (h *Hand) Hole() [2]poker.Card {
	return h.hole
}

// Board returns the community cards in the order dealt.
func (h *Hand) Board() []poker.Card {
	return slices.Clone(h.board)
}

// Flop returns the classified first three board cards.
func (h *Hand) Flop() *Board {
	return h.flop
}

// Evaluator returns the evaluator ranking this hand.
func (h *Hand) Evaluator() evaluator.Evaluator {
	return h.ev
}

// Rank returns the evaluator's rank of the hand; lower is stronger.
func (h *Hand) Rank() int {
	return h.rank
}

// RankClass returns the category bucket, 1 (straight flush) to 9 (high card).
func (h *Hand) RankClass() int {
	return h.rankClass
}

// HandRanks returns the hole card values (2-14) in ascending order.
func (h *Hand) HandRanks() [2]int {
	return h.handRanks
}

// BoardRanks returns the board values (2-14) in ascending order.
func (h *Hand) BoardRanks() []int {
	return slices.Clone(h.boardRanks)
}

// RestOfTheDeck returns every card not in the hole or on the board.
func (h *Hand) RestOfTheDeck() []poker.Card {
	return poker.Remaining(h.known)
}

func (h *Hand) String() string {
	return fmt.Sprintf("[%s %s] on %s", h.hole[0], h.hole[1], poker.FormatCards(h.board))
}

// IsStraightFlush reports rank class 1, royal flush included.
func (h *Hand) IsStraightFlush() bool { return h.rankClass == 1 }

// IsQuads reports four of a kind.
func (h *Hand) IsQuads() bool { return h.rankClass == 2 }

// IsFullHouse reports a full house.
func (h *Hand) IsFullHouse() bool { return h.rankClass == 3 }

// IsFlush reports a flush that is not a straight flush.
func (h *Hand) IsFlush() bool { return h.rankClass == 4 }

// IsStraight reports a straight that is not a straight flush.
func (h *Hand) IsStraight() bool { return h.rankClass == 5 }

// IsTwoPair reports two pair, counting pairs on the board.
func (h *Hand) IsTwoPair() bool { return h.rankClass == 7 }

// IsOnePair reports exactly one pair, counting a pair on the board.
func (h *Hand) IsOnePair() bool { return h.rankClass == 8 }

// IsHighCard reports no made hand.
func (h *Hand) IsHighCard() bool { return h.rankClass == 9 }

// IsTrips reports three of a kind made with one hole card.
func (h *Hand) IsTrips() bool {
	return h.rankClass == 6 && !h.PairInHand()
}

// IsSet reports three of a kind made with a pocket pair.
func (h *Hand) IsSet() bool {
	return h.rankClass == 6 && h.PairInHand()
}

// PairInHand reports a pocket pair.
func (h *Hand) PairInHand() bool {
	return h.handRanks[0] == h.handRanks[1]
}

// PairedBoard reports a board with a repeated rank. On the flop this is
// Board.PairedBoard, which excludes trips on board. From the turn onward
// any repeated rank counts, so trips or two board pairs also report true.
func (h *Hand) PairedBoard() bool {
	if len(h.board) == 3 {
		return h.flop.PairedBoard()
	}
	for i := 1; i < len(h.boardRanks); i++ {
		if h.boardRanks[i] == h.boardRanks[i-1] {
			return true
		}
	}
	return false
}

// Suited reports whether both hole cards share a suit.
func (h *Hand) Suited() bool {
	return h.hole[0].Suit() == h.hole[1].Suit()
}

// highLow orders the hole cards by rank. A pocket pair keeps hole order.
func (h *Hand) highLow() (high, low poker.Card) {
	if h.hole[1].Rank() > h.hole[0].Rank() {
		return h.hole[1], h.hole[0]
	}
	return h.hole[0], h.hole[1]
}

func (h *Hand) boardMax() int { return h.boardRanks[len(h.boardRanks)-1] }
func (h *Hand) boardMin() int { return h.boardRanks[0] }

package classification

import "slices"

// Positional predicates name a made pair, two pair or set by where its
// ranks sit among the sorted board ranks. They are defined for any board
// length unless noted.

// HasOverpair reports a pocket pair above every board card.
func (h *Hand) HasOverpair() bool {
	return h.PairInHand() && h.handRanks[0] > h.boardMax()
}

// HasOverpairToPairedBoard reports an overpair on a paired board.
func (h *Hand) HasOverpairToPairedBoard() bool {
	return h.HasOverpair() && h.PairedBoard()
}

// HasTopPair reports one pair made with the highest board rank.
func (h *Hand) HasTopPair() bool {
	return h.IsOnePair() && slices.Contains(h.handRanks[:], h.boardMax())
}

// HasBottomPair reports one pair made with the lowest board rank.
func (h *Hand) HasBottomPair() bool {
	return h.IsOnePair() && slices.Contains(h.handRanks[:], h.boardMin())
}

// HasMiddlePair reports one pair without a pocket pair that is neither top
// nor bottom pair. On a paired flop this includes the board pair itself.
// It is only defined on the flop and is false for longer boards.
func (h *Hand) HasMiddlePair() bool {
	if len(h.board) != 3 || h.PairInHand() {
		return false
	}
	return h.IsOnePair() && !h.HasTopPair() && !h.HasBottomPair()
}

// HasUnderTopPair reports a pocket pair below only the top board card.
func (h *Hand) HasUnderTopPair() bool {
	return h.pocketPairBelow() == 1
}

// HasUnderMiddlePair reports a pocket pair below exactly two board cards.
func (h *Hand) HasUnderMiddlePair() bool {
	return h.pocketPairBelow() == 2
}

// pocketPairBelow counts board cards above an unpaired board's pocket pair,
// or returns -1 when the shape does not apply.
func (h *Hand) pocketPairBelow() int {
	if !h.PairInHand() || h.PairedBoard() {
		return -1
	}
	higher := 0
	for _, r := range h.boardRanks {
		if r > h.handRanks[0] {
			higher++
		}
	}
	return higher
}

// HasUnderPair reports a pocket pair below every board card.
func (h *Hand) HasUnderPair() bool {
	return h.PairInHand() && h.handRanks[0] < h.boardMin()
}

// HasUnderPairToPaired reports an underpair on a paired board.
func (h *Hand) HasUnderPairToPaired() bool {
	return h.PairedBoard() && h.HasUnderPair()
}

// Two pair using both hole cards on an unpaired board.

func (h *Hand) unpairedTwoPairShape() bool {
	return !h.PairInHand() && !h.PairedBoard()
}

// HasTopTwoPair reports both hole cards pairing the two highest board cards.
func (h *Hand) HasTopTwoPair() bool {
	n := len(h.boardRanks)
	return h.unpairedTwoPairShape() &&
		h.handRanks[0] == h.boardRanks[n-2] &&
		h.handRanks[1] == h.boardRanks[n-1]
}

// HasTopAndBottom reports the hole cards pairing the lowest and highest
// board cards.
func (h *Hand) HasTopAndBottom() bool {
	return h.unpairedTwoPairShape() &&
		h.handRanks[0] == h.boardMin() &&
		h.handRanks[1] == h.boardMax()
}

// HasBottomTwoPair reports both hole cards pairing the two lowest board cards.
func (h *Hand) HasBottomTwoPair() bool {
	return h.unpairedTwoPairShape() &&
		h.handRanks[0] == h.boardRanks[0] &&
		h.handRanks[1] == h.boardRanks[1]
}

// HasUnderHighPair reports BB on AAC: a pocket pair between the low card
// and a higher board pair.
func (h *Hand) HasUnderHighPair() bool {
	if !h.PairInHand() || !h.PairedBoard() {
		return false
	}
	r := h.handRanks[0]
	return r > h.boardRanks[0] && r < h.boardRanks[1]
}

// HasOverLowPair reports BB on ACC: a pocket pair between a lower board
// pair and the high card.
func (h *Hand) HasOverLowPair() bool {
	if !h.PairInHand() || !h.PairedBoard() {
		return false
	}
	r := h.handRanks[0]
	return r > h.boardRanks[1] && r < h.boardRanks[2]
}

// Sets.

// HasTopSet reports a set of the highest board rank.
func (h *Hand) HasTopSet() bool {
	return h.IsSet() && h.handRanks[0] == h.boardMax()
}

// HasMiddleSet reports a set of neither the highest nor the lowest board rank.
func (h *Hand) HasMiddleSet() bool {
	return h.IsSet() && h.handRanks[0] != h.boardMax() && h.handRanks[0] != h.boardMin()
}

// HasBottomSet reports a set of the lowest board rank.
func (h *Hand) HasBottomSet() bool {
	return h.IsSet() && h.handRanks[0] == h.boardMin()
}

// Overcards.

// NumberOfOvercards counts hole cards above the highest board card.
func (h *Hand) NumberOfOvercards() int {
	n := 0
	for _, r := range h.handRanks {
		if r > h.boardMax() {
			n++
		}
	}
	return n
}

// HasTwoOvercards reports both hole cards above the board.
func (h *Hand) HasTwoOvercards() bool {
	return h.NumberOfOvercards() == 2
}

// HasOneOver reports exactly one hole card above the board.
func (h *Hand) HasOneOver() bool {
	return h.NumberOfOvercards() == 1
}

package classification

import "math/bits"

// FlushDraw reports whether the high and the low hole card each have
// exactly four of their suit among the known cards. A pocket pair reports
// at most (true, false). A made flush has no flush draw.
func (h *Hand) FlushDraw() (high, low bool) {
	return h.suitDraw(4)
}

// BackdoorFlush is FlushDraw with three cards of the suit: two more running
// cards are needed.
func (h *Hand) BackdoorFlush() (high, low bool) {
	return h.suitDraw(3)
}

// HasFlushDraw reports a flush draw on either hole card.
func (h *Hand) HasFlushDraw() bool {
	high, low := h.FlushDraw()
	return high || low
}

// HasBackdoorFlush reports a backdoor flush draw on either hole card.
func (h *Hand) HasBackdoorFlush() bool {
	high, low := h.BackdoorFlush()
	return high || low
}

func (h *Hand) suitDraw(count int) (high, low bool) {
	if h.IsFlush() || h.IsStraightFlush() {
		return false, false
	}

	highCard, lowCard := h.highLow()
	high = bits.OnesCount16(h.known.GetSuitMask(highCard.Suit())) == count
	low = bits.OnesCount16(h.known.GetSuitMask(lowCard.Suit())) == count

	if h.PairInHand() && (high || low) {
		return true, false
	}
	return high, low
}

// madeBeyondPair reports two pair or better, where straight draws are no
// longer tracked.
func (h *Hand) madeBeyondPair() bool {
	return !h.IsOnePair() && !h.IsHighCard()
}

// HasStraightDraw reports an open-ended straight draw: eight straight
// outs, or six when a flush draw claims the suited ones.
func (h *Hand) HasStraightDraw() bool {
	if h.madeBeyondPair() {
		return false
	}
	outs := h.OutsTo(flagIsStraight)
	if h.HasFlushDraw() {
		return outs == 6
	}
	return outs == 8
}

// HasGutshotStraightDraw reports an inside straight draw: four straight
// outs, or three alongside a flush draw.
func (h *Hand) HasGutshotStraightDraw() bool {
	if h.madeBeyondPair() {
		return false
	}
	outs := h.OutsTo(flagIsStraight)
	if h.HasFlushDraw() {
		return outs == 3
	}
	return outs == 4
}

// HasStraightFlushDraw reports an open-ended straight flush draw.
func (h *Hand) HasStraightFlushDraw() bool {
	if !h.HasFlushDraw() || !h.HasStraightDraw() {
		return false
	}
	return h.OutsTo(flagIsStraightFlush) >= 2
}

// HasGutshotStraightFlushDraw reports a single card to a straight flush.
func (h *Hand) HasGutshotStraightFlushDraw() bool {
	if !h.HasFlushDraw() || !h.HasGutshotStraightDraw() {
		return false
	}
	return h.OutsTo(flagIsStraightFlush) == 1
}

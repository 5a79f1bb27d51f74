package classification

import "github.com/lox/handshapes/poker"

// Canonical suit letters.
const (
	suitH = poker.Hearts
	suitD = poker.Diamonds
	suitS = poker.Spades
	suitC = poker.Clubs
)

// HDSC maps the hole cards to a canonical suit pattern shared by hands of
// the same made-hand, draw and positional shape on the same flop type.
// Ranks and hole order are kept; only suits change.
func (h *Hand) HDSC() [2]poker.Card {
	first, second := h.hdscSuits()
	return [2]poker.Card{
		poker.NewCard(h.hole[0].Rank(), first),
		poker.NewCard(h.hole[1].Rank(), second),
	}
}

// HDSCString returns HDSC as a four character string, e.g. "QhQc".
func (h *Hand) HDSCString() string {
	cards := h.HDSC()
	return poker.FormatCards(cards[:])
}

// hdscSuits returns the suits for the first and second hole card. The first
// matching rule wins; a rule whose sub-cases do not match falls through.
func (h *Hand) hdscSuits() (first, second uint8) {
	if h.IsFlush() || h.IsStraightFlush() {
		return suitH, suitH
	}

	flopType := h.flop.Type()

	if high, low := h.FlushDraw(); high || low {
		switch flopType {
		case BoardPairedSuited, BoardTwoTone:
			return suitH, suitH
		case BoardMonotone:
			return h.monotoneDrawSuits(high)
		}
	}

	if h.HasBackdoorFlush() {
		if flopType == BoardRainbow {
			switch {
			case h.HasBottomPair() || h.HasMiddlePair():
				return suitS, suitS
			case h.HasTopPair() || h.HasTopTwoPair():
				return suitH, suitH
			case h.HasTopAndBottom():
				return suitD, suitD
			case h.HasBottomTwoPair():
				return suitS, suitS
			default:
				return suitH, suitH
			}
		}

		if h.IsTwoPair() && h.PairedBoard() {
			switch {
			case h.PairInHand():
				return suitH, suitC
			case h.Suited():
				return suitH, suitH
			}
		}

		if h.IsTrips() {
			switch flopType {
			case BoardPairedRainbow:
				return suitS, suitS
			case BoardPairedSuited:
				return suitH, suitS
			}
		}

		if h.IsSet() && flopType == BoardTwoTone {
			return suitH, suitC
		}

		switch flopType {
		case BoardTrips, BoardPairedRainbow, BoardRainbow:
			return suitH, suitH
		case BoardPairedSuited, BoardTwoTone:
			if h.Suited() {
				return suitD, suitD
			}
			return suitH, suitC
		}
	}

	return suitC, suitS
}

// monotoneDrawSuits handles a flush draw on a monotone flop, where only one
// hole card can share the board suit. The drawing card becomes hearts when
// it is the high card and clubs when it is the low card.
func (h *Hand) monotoneDrawSuits(highDraws bool) (first, second uint8) {
	drawSuit, otherSuit := suitC, suitH
	if highDraws {
		drawSuit, otherSuit = suitH, suitC
	}

	highCard, _ := h.highLow()
	drawIsFirst := (highCard == h.hole[0]) == highDraws
	if drawIsFirst {
		return drawSuit, otherSuit
	}
	return otherSuit, drawSuit
}

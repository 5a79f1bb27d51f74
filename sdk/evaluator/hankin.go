package evaluator

import (
	"fmt"

	hankin "github.com/paulhankin/poker"

	"github.com/lox/handshapes/poker"
)

// Hankin evaluates with github.com/paulhankin/poker. That library scores
// hands so that higher is stronger; ranks here are the negated score so
// the usual lower-is-stronger order holds.
type Hankin struct {
	// floors holds the weakest score of every class, strongest class first.
	floors [9]int16
}

// weakest five-card hand of each class, straight flush first.
var hankinFloorHands = [9]string{
	"5s4s3s2sAs",
	"2c2d2h2s3c",
	"2c2d2h3c3d",
	"7c5c4c3c2c",
	"5c4d3h2sAc",
	"2c2d2h4c3d",
	"3c3d2c2d4h",
	"2c2d5h4c3d",
	"7c5d4h3s2c",
}

// NewHankin creates a paulhankin evaluator.
func NewHankin() (*Hankin, error) {
	h := &Hankin{}
	for i, s := range hankinFloorHands {
		var five [5]hankin.Card
		for j, c := range poker.MustParseCards(s) {
			hc, err := toHankin(c)
			if err != nil {
				return nil, err
			}
			five[j] = hc
		}
		h.floors[i] = hankin.Eval5(&five)
	}
	return h, nil
}

func (h *Hankin) Evaluate(cards []poker.Card) int {
	converted := make([]hankin.Card, len(cards))
	for i, c := range cards {
		hc, err := toHankin(c)
		if err != nil {
			// Every poker.Card maps onto a library card.
			panic(err)
		}
		converted[i] = hc
	}

	switch len(converted) {
	case 7:
		var seven [7]hankin.Card
		copy(seven[:], converted)
		return -int(hankin.Eval7(&seven))
	case 6:
		return -int(bestOfSix(converted))
	default:
		var five [5]hankin.Card
		copy(five[:], converted)
		return -int(hankin.Eval5(&five))
	}
}

func (h *Hankin) RankClass(rank int) int {
	score := int16(-rank)
	for i, floor := range h.floors {
		if score >= floor {
			return i + 1
		}
	}
	return 9
}

// bestOfSix scores each five-card subset of six cards and keeps the best.
func bestOfSix(cards []hankin.Card) int16 {
	best := int16(-32768)
	var five [5]hankin.Card
	for skip := range 6 {
		j := 0
		for i, c := range cards {
			if i == skip {
				continue
			}
			five[j] = c
			j++
		}
		if score := hankin.Eval5(&five); score > best {
			best = score
		}
	}
	return best
}

func toHankin(c poker.Card) (hankin.Card, error) {
	var suit hankin.Suit
	switch c.Suit() {
	case poker.Clubs:
		suit = hankin.Club
	case poker.Diamonds:
		suit = hankin.Diamond
	case poker.Hearts:
		suit = hankin.Heart
	default:
		suit = hankin.Spade
	}
	// The library numbers ranks 1..13 with the ace as 1.
	rank := hankin.Rank(c.Value())
	if c.Rank() == poker.Ace {
		rank = hankin.Rank(1)
	}
	card, err := hankin.MakeCard(suit, rank)
	if err != nil {
		return card, fmt.Errorf("convert %s: %w", c, err)
	}
	return card, nil
}

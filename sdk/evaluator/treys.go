package evaluator

import (
	treys "github.com/chehsunliu/poker"

	"github.com/lox/handshapes/poker"
)

// Upper bounds (inclusive) of each treys rank class, strongest first.
var treysClassBounds = [...]int{
	10,   // straight flush
	166,  // four of a kind
	322,  // full house
	1599, // flush
	1609, // straight
	2467, // three of a kind
	3325, // two pair
	6185, // pair
	7462, // high card
}

// Treys evaluates with github.com/chehsunliu/poker, a port of the
// treys/deuces lookup evaluator. Ranks run from 1 (royal flush) to 7462.
type Treys struct{}

// NewTreys creates a treys evaluator.
func NewTreys() *Treys {
	return &Treys{}
}

func (Treys) Evaluate(cards []poker.Card) int {
	converted := make([]treys.Card, len(cards))
	for i, c := range cards {
		converted[i] = treys.NewCard(c.String())
	}
	return int(treys.Evaluate(converted))
}

func (Treys) RankClass(rank int) int {
	for i, bound := range treysClassBounds {
		if rank <= bound {
			return i + 1
		}
	}
	return 9
}

// Describe returns the treys name for a rank.
func (Treys) Describe(rank int) string {
	return treys.RankString(int32(rank))
}

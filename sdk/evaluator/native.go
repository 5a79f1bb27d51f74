package evaluator

import "github.com/lox/handshapes/poker"

// Native evaluates with the bit mask evaluator in package poker.
type Native struct{}

// NewNative creates a native evaluator.
func NewNative() *Native {
	return &Native{}
}

func (Native) Evaluate(cards []poker.Card) int {
	return int(poker.EvaluateCards(cards))
}

func (Native) RankClass(rank int) int {
	return poker.HandRank(rank).RankClass()
}

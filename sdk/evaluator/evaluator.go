// Package evaluator adapts hand evaluators to the narrow interface the
// classifier needs: a total order over five to seven card hands and a
// category bucket for each rank.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/handshapes/poker"
)

// Evaluator ranks hands. Lower ranks are stronger and ranks of five, six
// and seven card sets are comparable with each other.
type Evaluator interface {
	// Evaluate ranks five to seven distinct cards.
	Evaluate(cards []poker.Card) int
	// RankClass buckets a rank: 1 straight flush, 2 quads, 3 full house,
	// 4 flush, 5 straight, 6 three of a kind, 7 two pair, 8 pair,
	// 9 high card.
	RankClass(rank int) int
}

// Evaluator names accepted by New.
const (
	NameNative = "native"
	NameTreys  = "treys"
	NameHankin = "hankin"
)

// Names lists the registered evaluators.
func Names() []string {
	return []string{NameNative, NameTreys, NameHankin}
}

// New returns the evaluator registered under name.
func New(name string) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameNative:
		return NewNative(), nil
	case NameTreys:
		return NewTreys(), nil
	case NameHankin:
		return NewHankin()
	default:
		return nil, fmt.Errorf("unknown evaluator %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}

// ClassName returns the display name of a 1..9 rank class.
func ClassName(class int) string {
	if class < 1 || class > 9 {
		return "Unknown"
	}
	return poker.HandTypeForClass(class).String()
}

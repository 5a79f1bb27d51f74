package classification

// Flag is a named boolean classification of a hand. Only flags obtained
// from Flags or LookupFlag have their outs memoized; a Flag built by the
// caller is always counted afresh, whatever its name.
type Flag struct {
	Name string
	Fn   func(*Hand) bool

	registered bool
}

func register(name string, fn func(*Hand) bool) Flag {
	return Flag{Name: name, Fn: fn, registered: true}
}

var (
	flagIsStraight      = register("is_straight", (*Hand).IsStraight)
	flagIsStraightFlush = register("is_straight_flush", (*Hand).IsStraightFlush)
)

// registry is ordered strongest made hand first, then positional shapes,
// then draws and overcards. Names are stable and used as cache keys.
var registry = []Flag{
	flagIsStraightFlush,
	register("is_quads", (*Hand).IsQuads),
	register("is_full_house", (*Hand).IsFullHouse),
	register("is_flush", (*Hand).IsFlush),
	flagIsStraight,
	register("is_trips", (*Hand).IsTrips),
	register("is_set", (*Hand).IsSet),
	register("is_two_pair", (*Hand).IsTwoPair),
	register("is_one_pair", (*Hand).IsOnePair),
	register("is_high_card", (*Hand).IsHighCard),
	register("has_overpair", (*Hand).HasOverpair),
	register("has_overpair_to_paired_board", (*Hand).HasOverpairToPairedBoard),
	register("has_top_pair", (*Hand).HasTopPair),
	register("has_under_top_pair", (*Hand).HasUnderTopPair),
	register("has_bottom_pair", (*Hand).HasBottomPair),
	register("has_middle_pair", (*Hand).HasMiddlePair),
	register("has_under_middle_pair", (*Hand).HasUnderMiddlePair),
	register("has_under_pair", (*Hand).HasUnderPair),
	register("has_top_two_pair", (*Hand).HasTopTwoPair),
	register("has_top_and_bottom", (*Hand).HasTopAndBottom),
	register("has_bottom_two_pair", (*Hand).HasBottomTwoPair),
	register("has_under_high_pair", (*Hand).HasUnderHighPair),
	register("has_over_low_pair", (*Hand).HasOverLowPair),
	register("has_under_pair_to_paired", (*Hand).HasUnderPairToPaired),
	register("has_top_set", (*Hand).HasTopSet),
	register("has_middle_set", (*Hand).HasMiddleSet),
	register("has_bottom_set", (*Hand).HasBottomSet),
	register("has_straight_flush_draw", (*Hand).HasStraightFlushDraw),
	register("has_gutshot_straight_flush_draw", (*Hand).HasGutshotStraightFlushDraw),
	register("has_flush_draw", (*Hand).HasFlushDraw),
	register("has_straight_draw", (*Hand).HasStraightDraw),
	register("has_gutshot_straight_draw", (*Hand).HasGutshotStraightDraw),
	register("has_backdoor_flush", (*Hand).HasBackdoorFlush),
	register("has_two_overcards", (*Hand).HasTwoOvercards),
	register("has_one_over", (*Hand).HasOneOver),
}

var aliases = map[string]string{
	"is_fullhouse": "is_full_house",
	"is_boat":      "is_full_house",
}

var flagIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, f := range registry {
		idx[f.Name] = i
	}
	return idx
}()

// Flags returns every registered flag in registry order.
func Flags() []Flag {
	out := make([]Flag, len(registry))
	copy(out, registry)
	return out
}

// LookupFlag finds a flag by name or alias.
func LookupFlag(name string) (Flag, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	i, ok := flagIndex[name]
	if !ok {
		return Flag{}, false
	}
	return registry[i], true
}

// TrueFlags returns the names of every flag that holds for the hand, in
// registry order.
func (h *Hand) TrueFlags() []string {
	var names []string
	for _, f := range registry {
		if f.Fn(h) {
			names = append(names, f.Name)
		}
	}
	return names
}

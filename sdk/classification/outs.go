package classification

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lox/handshapes/poker"
)

// DefaultOutsCacheSize is the capacity of the package outs cache.
const DefaultOutsCacheSize = 4096

// outsKey identifies an outs count by value: the ordered hole cards, the
// set of board cards and the flag name.
type outsKey struct {
	hole  [2]poker.Card
	board poker.Hand
	flag  string
}

// OutsCache memoizes OutsTo results. It is a fixed size LRU: once full, the
// least recently used count is evicted. It is safe for concurrent use.
type OutsCache struct {
	entries *lru.Cache[outsKey, int]
}

// NewOutsCache creates a cache holding up to size counts.
func NewOutsCache(size int) (*OutsCache, error) {
	entries, err := lru.New[outsKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("outs cache: %w", err)
	}
	return &OutsCache{entries: entries}, nil
}

var defaultOutsCache = func() *OutsCache {
	c, err := NewOutsCache(DefaultOutsCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

// Len returns the number of cached counts.
func (c *OutsCache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached count.
func (c *OutsCache) Purge() {
	c.entries.Purge()
}

// OutsTo counts the unseen cards that, dealt as the next board card, make
// flag true. Counts of registered flags are memoized per hand and flag
// name; any other flag is never cached. A river hand has no outs.
func (h *Hand) OutsTo(flag Flag) int {
	if len(h.board) >= 5 {
		return 0
	}

	key := outsKey{hole: h.hole, board: h.known &^ poker.NewHand(h.hole[:]...), flag: flag.Name}
	if flag.registered {
		if n, ok := h.outs.entries.Get(key); ok {
			return n
		}
	}

	count := 0
	for _, card := range h.RestOfTheDeck() {
		if flag.Fn(h.withCard(card)) {
			count++
		}
	}

	if flag.registered {
		h.outs.entries.Add(key, count)
	}
	return count
}

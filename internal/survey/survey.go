// Package survey labels many hands at once: every hole card combination
// against one board, or a batch of randomly dealt hands.
package survey

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/classification"
	"github.com/lox/handshapes/sdk/evaluator"
)

// Label is the classification of one hand.
type Label struct {
	Hole      string   `json:"hole"`
	Board     string   `json:"board"`
	RankClass int      `json:"rank_class"`
	HDSC      string   `json:"hdsc"`
	Flags     []string `json:"flags"`
}

// Bucket counts the hands that share an HDSC pattern.
type Bucket struct {
	HDSC  string   `json:"hdsc"`
	Count int      `json:"count"`
	Holes []string `json:"holes"`
}

// Report is the result of surveying a board.
type Report struct {
	Board     string        `json:"board"`
	FlopType  string        `json:"flop_type"`
	Hands     int           `json:"hands"`
	ByClass   map[int]int   `json:"by_class"`
	Buckets   []Bucket      `json:"buckets"`
	Labels    []Label       `json:"labels"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Surveyor classifies hands in parallel.
type Surveyor struct {
	workers int
	ev      evaluator.Evaluator
	cache   *classification.OutsCache
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Surveyor.
type Option func(*Surveyor)

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(s *Surveyor) {
		s.workers = n
	}
}

// WithEvaluator ranks every surveyed hand with ev.
func WithEvaluator(ev evaluator.Evaluator) Option {
	return func(s *Surveyor) {
		s.ev = ev
	}
}

// WithOutsCache shares c between all surveyed hands.
func WithOutsCache(c *classification.OutsCache) Option {
	return func(s *Surveyor) {
		s.cache = c
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Surveyor) {
		s.logger = logger
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(s *Surveyor) {
		s.clock = clock
	}
}

// New creates a Surveyor. Without options it uses one worker, the native
// evaluator, the package outs cache, a discarding logger and the real clock.
func New(opts ...Option) *Surveyor {
	s := &Surveyor{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.ev == nil {
		s.ev = evaluator.NewNative()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	return s
}

func (s *Surveyor) handOptions() []classification.HandOption {
	opts := []classification.HandOption{classification.WithEvaluator(s.ev)}
	if s.cache != nil {
		opts = append(opts, classification.WithOutsCache(s.cache))
	}
	return opts
}

// HoleCombos returns every two card combination of the cards not on
// board, higher card first, in ascending order.
func HoleCombos(board []poker.Card) [][2]poker.Card {
	rest := poker.Remaining(poker.NewHand(board...))
	combos := make([][2]poker.Card, 0, len(rest)*(len(rest)-1)/2)
	for i := 1; i < len(rest); i++ {
		for j := 0; j < i; j++ {
			combos = append(combos, [2]poker.Card{rest[i], rest[j]})
		}
	}
	return combos
}

// Board labels every hole card combination against board and groups the
// results by HDSC pattern.
func (s *Surveyor) Board(ctx context.Context, board []poker.Card) (*Report, error) {
	if len(board) < 3 || len(board) > 5 {
		return nil, fmt.Errorf("%w: need 3 to 5 board cards, got %d", classification.ErrInvalidBoard, len(board))
	}
	flop, err := classification.NewBoard(board[:3])
	if err != nil {
		return nil, err
	}

	started := s.clock.Now()
	combos := HoleCombos(board)
	s.logger.Debug("Surveying board",
		"board", poker.FormatCards(board),
		"type", flop.Type(),
		"combos", len(combos),
		"workers", s.workers)

	labels := make([]Label, len(combos))
	err = s.run(ctx, len(combos), func(i int) error {
		h, err := classification.NewHand(combos[i][:], board, s.handOptions()...)
		if err != nil {
			return err
		}
		labels[i] = label(h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Board:     poker.FormatCards(board),
		FlopType:  flop.Type().String(),
		Hands:     len(labels),
		ByClass:   make(map[int]int),
		Labels:    labels,
		StartedAt: started,
		Elapsed:   s.clock.Since(started),
	}
	report.Buckets = bucket(labels)
	for _, l := range labels {
		report.ByClass[l.RankClass]++
	}

	s.logger.Info("Survey complete",
		"board", report.Board,
		"hands", report.Hands,
		"buckets", len(report.Buckets),
		"elapsed", report.Elapsed)
	return report, nil
}

// Sample deals count random hands from deck and labels them. Boards cycle
// through flop, turn and river.
func (s *Surveyor) Sample(ctx context.Context, deck *poker.Deck, count int) ([]Label, error) {
	deals := make([][2][]poker.Card, count)
	for i := range deals {
		deck.Reset()
		deals[i] = [2][]poker.Card{deck.Deal(2), deck.Deal(3 + i%3)}
	}

	labels := make([]Label, count)
	err := s.run(ctx, count, func(i int) error {
		h, err := classification.NewHand(deals[i][0], deals[i][1], s.handOptions()...)
		if err != nil {
			return err
		}
		labels[i] = label(h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// run calls fn for every index in [0, n) on the worker pool. Each index is
// handled by exactly one worker; the first error or a cancelled context
// stops the pool.
func (s *Surveyor) run(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range n {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return fmt.Errorf("hand %d: %w", i, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func label(h *classification.Hand) Label {
	hole := h.Hole()
	return Label{
		Hole:      poker.FormatCards(hole[:]),
		Board:     poker.FormatCards(h.Board()),
		RankClass: h.RankClass(),
		HDSC:      h.HDSCString(),
		Flags:     h.TrueFlags(),
	}
}

// bucket groups labels by HDSC, largest bucket first.
func bucket(labels []Label) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, l := range labels {
		i, ok := index[l.HDSC]
		if !ok {
			i = len(buckets)
			index[l.HDSC] = i
			buckets = append(buckets, Bucket{HDSC: l.HDSC})
		}
		buckets[i].Count++
		buckets[i].Holes = append(buckets[i].Holes, l.Hole)
	}
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.HDSC, b.HDSC))
	})
	return buckets
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/handshapes/internal/randutil"
	"github.com/lox/handshapes/internal/survey"
	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/evaluator"
)

type SampleCmd struct {
	Count int   `short:"n" default:"10" help:"Number of hands to deal"`
	Seed  int64 `help:"Deck seed (0 picks one from the clock)"`
	JSON  bool  `help:"Print the labels as JSON"`
}

func (c *SampleCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	seed := randutil.Seed(c.Seed, a.clock)
	a.logger.Info("Dealing sample hands", "count", c.Count, "seed", seed)

	ctx, cancel := setupSignalHandler(a.logger)
	defer cancel()

	s := survey.New(
		survey.WithWorkers(a.cfg.Survey.Workers),
		survey.WithEvaluator(a.ev),
		survey.WithOutsCache(a.cache),
		survey.WithLogger(a.logger),
		survey.WithClock(a.clock),
	)
	labels, err := s.Sample(ctx, poker.NewDeck(randutil.New(seed)), c.Count)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(labels)
	}

	st := a.styles
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		st.header.Render("Hole"), st.header.Render("Board"), st.header.Render("Made hand"),
		st.header.Render("HDSC"), st.header.Render("Flags"))
	for _, l := range labels {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			st.value.Render(l.Hole), l.Board, evaluator.ClassName(l.RankClass),
			st.hdsc.Render(l.HDSC), st.flag.Render(strings.Join(l.Flags, " ")))
	}
	return w.Flush()
}

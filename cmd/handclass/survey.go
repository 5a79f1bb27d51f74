package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/handshapes/internal/fileutil"
	"github.com/lox/handshapes/internal/survey"
	"github.com/lox/handshapes/poker"
	"github.com/lox/handshapes/sdk/evaluator"
)

type SurveyCmd struct {
	Board   string `required:"" help:"Board cards (3 to 5), e.g. 2c3c8c"`
	Workers int    `short:"w" help:"Worker count (overrides config)"`
	Top     int    `default:"20" help:"Number of HDSC buckets to print"`
	Out     string `short:"o" type:"path" help:"Write the full report as JSON"`
}

func (c *SurveyCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return err
	}

	workers := a.cfg.Survey.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, cancel := setupSignalHandler(a.logger)
	defer cancel()

	s := survey.New(
		survey.WithWorkers(workers),
		survey.WithEvaluator(a.ev),
		survey.WithOutsCache(a.cache),
		survey.WithLogger(a.logger),
		survey.WithClock(a.clock),
	)
	report, err := s.Board(ctx, board)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := fileutil.WriteJSON(c.Out, report); err != nil {
			return err
		}
		a.logger.Info("Wrote survey report", "path", c.Out)
	}

	st := a.styles
	fmt.Fprintf(a.out, "%s %s, %d hands, %d patterns\n",
		st.header.Render(report.Board), report.FlopType, report.Hands, len(report.Buckets))

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for class := 1; class <= 9; class++ {
		if n := report.ByClass[class]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\n", st.label.Render(evaluator.ClassName(class)), n)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	w = tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for i, b := range report.Buckets {
		if c.Top > 0 && i >= c.Top {
			fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("... %d more", len(report.Buckets)-i)))
			break
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", st.hdsc.Render(b.HDSC), b.Count, st.muted.Render(firstHoles(b.Holes, 4)))
	}
	return w.Flush()
}

// firstHoles joins the first n holes.
func firstHoles(holes []string, n int) string {
	if len(holes) <= n {
		return strings.Join(holes, " ")
	}
	return strings.Join(holes[:n], " ") + " ..."
}

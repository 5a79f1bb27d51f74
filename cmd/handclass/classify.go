package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/handshapes/sdk/classification"
	"github.com/lox/handshapes/sdk/evaluator"
)

type ClassifyCmd struct {
	Hole  string `required:"" help:"Hole cards, e.g. KsJd"`
	Board string `required:"" help:"Board cards (3 to 5), e.g. JsQs2h"`
	JSON  bool   `help:"Print the classification as JSON"`
}

// classifyResult is the printed form of one classified hand.
type classifyResult struct {
	Hand          string   `json:"hand"`
	FlopType      string   `json:"flop_type"`
	Rank          int      `json:"rank"`
	RankClass     int      `json:"rank_class"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	Flags         []string `json:"flags"`
	StraightOuts  int      `json:"straight_outs"`
	StraightFlush int      `json:"straight_flush_outs"`
	HDSC          string   `json:"hdsc"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	h, err := classification.ParseHand(c.Hole, c.Board, a.handOptions()...)
	if err != nil {
		return err
	}
	res := classify(h)
	a.logger.Debug("Classified hand", "hand", res.Hand, "rank", res.Rank, "flags", len(res.Flags))

	if c.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	s := a.styles
	fmt.Fprintln(a.out, s.header.Render(res.Hand))
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(w, "%s\t%s\n", s.label.Render(label), value)
	}
	row("Flop", res.FlopType)
	category := fmt.Sprintf("%s (class %d)", res.Category, res.RankClass)
	if res.Description != "" && res.Description != res.Category {
		category += ", " + res.Description
	}
	row("Made hand", s.value.Render(category))
	row("Flags", s.flag.Render(strings.Join(res.Flags, " ")))
	row("Straight outs", fmt.Sprint(res.StraightOuts))
	row("Straight flush outs", fmt.Sprint(res.StraightFlush))
	row("HDSC", s.hdsc.Render(res.HDSC))
	return w.Flush()
}

func classify(h *classification.Hand) classifyResult {
	straight, _ := classification.LookupFlag("is_straight")
	straightFlush, _ := classification.LookupFlag("is_straight_flush")

	res := classifyResult{
		Hand:          h.String(),
		FlopType:      h.Flop().Type().String(),
		Rank:          h.Rank(),
		RankClass:     h.RankClass(),
		Category:      evaluator.ClassName(h.RankClass()),
		Flags:         h.TrueFlags(),
		StraightOuts:  h.OutsTo(straight),
		StraightFlush: h.OutsTo(straightFlush),
		HDSC:          h.HDSCString(),
	}
	if d, ok := h.Evaluator().(interface{ Describe(int) string }); ok {
		res.Description = d.Describe(h.Rank())
	}
	return res
}

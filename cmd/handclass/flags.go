package main

import (
	"fmt"

	"github.com/lox/handshapes/sdk/classification"
)

type FlagsCmd struct{}

func (c *FlagsCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	for i, f := range classification.Flags() {
		fmt.Fprintf(a.out, "%s %s\n", a.styles.muted.Render(fmt.Sprintf("%2d", i+1)), f.Name)
	}
	return nil
}

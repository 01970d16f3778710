package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.coder.com/cli"

	"github.com/jibtool/jib/internal/recipe"
)

type listcmd struct {
	gf *globalFlags

	sorted bool
}

func (c *listcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "list",
		Usage: "[flags]",
		Desc:  `Lists every recipe in the loaded recipe file with its summary.`,
	}
}

func (c *listcmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&c.sorted, "sorted", false, "Sort recipes alphabetically instead of declaration order.")
}

func (c *listcmd) Run(fl *flag.FlagSet) {
	order := c.gf.listOrder()
	if c.sorted {
		order = recipe.Alphabetical
	}

	writeList(os.Stdout, c.gf.mustRecipes(), order)
}

// writeList prints one recipe per line, name then summary.
func writeList(w io.Writer, set *recipe.Set, order recipe.Order) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, e := range set.List(order) {
		fmt.Fprintf(tw, "%v\t%v\n", e.Name, e.Summary)
	}
	tw.Flush()
}

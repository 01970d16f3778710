package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.coder.com/cli"

	"github.com/jibtool/jib/internal/recipe"
)

type dumpcmd struct {
	gf *globalFlags
}

func (c *dumpcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name: "dump",
		Desc: `Reprints the loaded recipe file in canonical form.
The output parses back to an identical recipe set.`,
	}
}

func (c *dumpcmd) Run(fl *flag.FlagSet) {
	writeDump(os.Stdout, c.gf.mustRecipes())
}

func writeDump(w io.Writer, set *recipe.Set) {
	for i, r := range set.Recipes() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeRecipe(w, r)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.coder.com/cli"
	"go.coder.com/flog"

	"github.com/jibtool/jib/internal/recipe"
)

type showcmd struct {
	gf *globalFlags
}

func (c *showcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "show",
		Usage: "<recipe>",
		Desc:  `Prints a recipe's command lines without running them.`,
	}
}

func (c *showcmd) Run(fl *flag.FlagSet) {
	name := fl.Arg(0)
	if name == "" {
		flog.Fatal("Argument <recipe> must be provided.")
	}

	r, err := c.gf.mustRecipes().Lookup(name)
	if err != nil {
		flog.Fatal("%v", err)
	}

	writeRecipe(os.Stdout, r)
}

// writeRecipe reprints a recipe in canonical source form.
func writeRecipe(w io.Writer, r *recipe.Recipe) {
	if r.Summary != "" {
		fmt.Fprintf(w, "# %v\n", r.Summary)
	}
	fmt.Fprintf(w, "%v:\n", r.Name)
	for _, line := range r.Commands {
		fmt.Fprintf(w, "    %v\n", line)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"go.coder.com/cli"
	"go.coder.com/flog"

	"github.com/jibtool/jib/internal/dispatch"
)

type runcmd struct {
	gf *globalFlags

	dryRun bool
}

func (c *runcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "run",
		Usage: "[flags] <recipe> [args...]",
		Desc: `Runs a recipe by name, forwarding any trailing arguments to its
final command line and exiting with the recipe's status.

This is the explicit form of "jib <recipe>". Use it when a recipe
name collides with a jib subcommand.

Examples:
	Run the lint recipe
	- jib run lint

	Forward arguments to the underlying program
	- jib run anthropic --port 8080`,
	}
}

func (c *runcmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&c.dryRun, "dry-run", false, "Print the command lines without running them.")
}

func (c *runcmd) Run(fl *flag.FlagSet) {
	name := fl.Arg(0)
	if name == "" {
		flog.Fatal("Argument <recipe> must be provided.")
	}

	set := c.gf.mustRecipes()

	if c.dryRun {
		r, err := set.Lookup(name)
		if err != nil {
			flog.Fatal("%v", err)
		}
		for _, line := range dispatch.Commands(r, fl.Args()[1:]) {
			fmt.Println(line)
		}
		return
	}

	os.Exit(c.gf.dispatch(set, name, fl.Args()[1:]))
}

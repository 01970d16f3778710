package main

import (
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/posener/complete"

	"go.coder.com/cli"
)

func genAutocomplete(cmds []cli.Command, recipes complete.Predictor) complete.Command {
	var (
		ac = complete.Command{
			Sub:         map[string]complete.Command{},
			Flags:       map[string]complete.Predictor{},
			GlobalFlags: map[string]complete.Predictor{},
			// Bare arguments are recipe names.
			Args: recipes,
		}
	)

	// add all commands + flags
	for _, e := range cmds {
		// the root command is handled separately and its flags are added as global flags.
		if e.Spec().Name == "jib" {
			registerFlags(e.(cli.FlaggedCommand), func(f *flag.Flag) {
				n := fmtFlag(f.Name)
				switch f.Name {
				// special case for autocompleting configs
				case "config":
					ac.GlobalFlags[n] = complete.PredictFiles("*.toml")
				case "f":
					ac.GlobalFlags[n] = complete.PredictFiles("*")
				default:
					ac.GlobalFlags[n] = complete.PredictAnything
				}
			})

			// don't register root command
			continue
		}

		genCommandAutocomplete(ac, e, recipes)
	}

	return ac
}

// genCommandAutocomplete generates an autocomplete entry for a command.
// It will recursively add all subcommands.
func genCommandAutocomplete(parent complete.Command, cmd cli.Command, recipes complete.Predictor) {
	child := complete.Command{
		Sub:   map[string]complete.Command{},
		Flags: map[string]complete.Predictor{},
	}

	// run and show take a recipe name as their first argument.
	switch cmd.Spec().Name {
	case "run", "show":
		child.Args = recipes
	}

	if f, ok := cmd.(cli.FlaggedCommand); ok {
		registerFlags(f, func(f *flag.Flag) {
			child.Flags[fmtFlag(f.Name)] = complete.PredictAnything
		})
	}

	if pc, ok := cmd.(cli.ParentCommand); ok {
		genSubcommandAutocomplete(child, pc.Subcommands(), recipes)
	}

	parent.Sub[cmd.Spec().Name] = child
}

// genSubcommandAutocomplete recursively walks up a command tree, adding child commands to their parent.
func genSubcommandAutocomplete(parent complete.Command, cmds []cli.Command, recipes complete.Predictor) {
	for _, e := range cmds {
		genCommandAutocomplete(parent, e, recipes)
	}
}

// predictRecipes completes recipe names from the discovered recipe file.
// Completion must never fail loudly, so load errors predict nothing.
func predictRecipes(gf *globalFlags) complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		set, err := gf.recipes()
		if err != nil {
			return nil
		}
		return set.Names()
	})
}

func registerFlags(cmd cli.FlaggedCommand, visitFunc func(f *flag.Flag)) {
	// make a fake FlagSet for the command to set the flags on,
	// then we can iterate over them
	set := flag.NewFlagSet("", flag.ContinueOnError)
	cmd.RegisterFlags(set)

	set.VisitAll(visitFunc)
}

func fmtFlag(name string) string {
	if utf8.RuneCountInString(name) > 1 {
		return fmt.Sprintf("--%s", name)
	}

	return fmt.Sprintf("-%s", name)
}

package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/posener/complete"

	"go.coder.com/cli"
)

var _ interface {
	cli.Command
	cli.FlaggedCommand
	cli.ParentCommand
} = new(rootCmd)

type rootCmd struct {
	globalFlags

	installAutocomplete   bool
	uninstallAutocomplete bool
}

func (r *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "jib",
		Usage: "[GLOBAL FLAGS] <recipe | COMMAND> [ARGS...]",
		Desc: `A tiny dispatcher for named shell recipes.

jib loads the nearest Jibfile and runs the recipe you name, forwarding
any trailing arguments to its final command line and exiting with the
recipe's own status. Run jib with no arguments to see what's available.`,
	}
}

// Run handles the bare invocation and recipe names that didn't match a
// subcommand.
func (r *rootCmd) Run(fl *flag.FlagSet) {
	if r.handleAutocomplete() {
		return
	}

	if fl.NArg() == 0 || fl.Arg(0) == "help" {
		// Pure listing, no subprocess.
		writeList(os.Stdout, r.mustRecipes(), r.listOrder())
		return
	}

	set := r.mustRecipes()
	os.Exit(r.dispatch(set, fl.Arg(0), fl.Args()[1:]))
}

func (r *rootCmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&r.verbose, "v", false, "Enable debug logging.")
	fl.StringVar(&r.configPath, "config",
		filepath.Join(metaRoot(), "jib.toml"),
		"Path to config.",
	)
	fl.StringVar(&r.recipePath, "f", "", "Path to the recipe file, skipping discovery.")

	// We don't use these directly, just added for visability on fl.Usage().
	fl.BoolVar(&r.installAutocomplete, "install-autocomplete", false, "Install autocomplete")
	fl.BoolVar(&r.uninstallAutocomplete, "uninstall-autocomplete", false, "Uninstall autocomplete")
}

func (r rootCmd) Subcommands() []cli.Command {
	return []cli.Command{
		&listcmd{gf: &r.globalFlags},
		&runcmd{gf: &r.globalFlags},
		&showcmd{gf: &r.globalFlags},
		&dumpcmd{gf: &r.globalFlags},
		&versioncmd{},
	}
}

func main() {
	cli.RunRoot(&rootCmd{})
}

func (r *rootCmd) handleAutocomplete() bool {
	cmds := []cli.Command{r}
	cmds = append(cmds, cli.ParentCommand(r).Subcommands()...)

	cmp := complete.New("jib", genAutocomplete(cmds, predictRecipes(&r.globalFlags)))
	cmp.InstallName = "install-autocomplete"
	cmp.UninstallName = "uninstall-autocomplete"

	// only call run if we know we want to install/uninstall autocomplete
	if r.installAutocomplete || r.uninstallAutocomplete {
		return cmp.Run()
	}

	// otherwise just process autocomplete
	return cmp.Complete()
}

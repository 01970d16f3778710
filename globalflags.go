package main

import (
	"os"

	"github.com/fatih/color"
	"go.coder.com/flog"
	"golang.org/x/xerrors"

	"github.com/jibtool/jib/internal/dispatch"
	"github.com/jibtool/jib/internal/recipe"
)

type globalFlags struct {
	verbose    bool
	configPath string
	recipePath string
}

func (gf *globalFlags) debug(msg string, args ...interface{}) {
	if !gf.verbose {
		return
	}

	flog.Log(
		flog.Level(color.New(color.FgHiMagenta).Sprint("DEBUG")),
		msg, args...,
	)
}

func (gf *globalFlags) config() config {
	return mustReadConfig(gf.configPath)
}

// recipes loads the recipe set, discovering the recipe file upward from
// the working directory unless -f was given.
func (gf *globalFlags) recipes() (*recipe.Set, error) {
	if gf.recipePath != "" {
		return recipe.Load(gf.recipePath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, xerrors.Errorf("get working directory: %w", err)
	}

	var names []string
	if rf := gf.config().RecipeFile; rf != "" {
		names = []string{rf}
	}

	path, err := recipe.Find(wd, names...)
	if err != nil {
		return nil, err
	}
	gf.debug("using recipe file %v", path)

	return recipe.Load(path)
}

func (gf *globalFlags) mustRecipes() *recipe.Set {
	set, err := gf.recipes()
	if err != nil {
		flog.Fatal("%v", err)
	}
	return set
}

// listOrder returns the configured default listing order.
func (gf *globalFlags) listOrder() recipe.Order {
	if gf.config().SortList {
		return recipe.Alphabetical
	}
	return recipe.DeclarationOrder
}

// dispatch runs the named recipe with the caller's streams attached and
// returns the exit code jib should propagate.
func (gf *globalFlags) dispatch(set *recipe.Set, name string, args []string) int {
	d := &dispatch.Dispatcher{Shell: gf.config().Shell}

	gf.debug("dispatching %v, forwarding %v", name, args)
	code, err := d.Run(set, name, args)
	if err != nil {
		var unknown *recipe.UnknownRecipeError
		if xerrors.As(err, &unknown) {
			flog.Error("%v", err)
			flog.Error("run `jib list` to see available recipes")
			return 1
		}
		flog.Error("failed to run recipe %v: %v", name, err)
		return 1
	}
	return code
}

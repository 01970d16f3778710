package main

import (
	"flag"
	"fmt"

	"go.coder.com/cli"
)

// version is stamped at build time via -ldflags.
var version string

type versioncmd struct{}

func (v *versioncmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name: "version",
		Desc: "Retrieve the current version.",
	}
}

func (v *versioncmd) Run(fl *flag.FlagSet) {
	fmt.Println(version)
}

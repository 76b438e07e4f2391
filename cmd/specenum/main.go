package main

import (
	"github.com/alecthomas/kong"

	"github.com/broady/specenum"
)

type CLI struct {
	Verbose       bool             `short:"v" help:"Enable log messages during code generation."`
	LazyOverwrite bool             `help:"Only overwrite the output file when its contents actually changed."`
	Version       kong.VersionFlag `help:"Print version information and quit."`

	Out  string   `arg:"" help:"Path to write the header file to."`
	Defs []string `arg:"" name:"def" help:"Paths to enum definition files, in load order."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("specenum"),
		kong.Description("Compile enum definition files into a specenum C header."),
		kong.UsageOnError(),
		kong.Vars{"version": Version()},
	)

	err := specenum.Generate(&specenum.Config{
		OutPath:       cli.Out,
		DefPaths:      cli.Defs,
		Verbose:       cli.Verbose,
		LazyOverwrite: cli.LazyOverwrite,
	})
	ctx.FatalIfErrorf(err)
}

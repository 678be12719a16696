package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/readmepin/cmd/readmepin/commands"
	"git.home.luguber.info/inful/readmepin/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("readmepin"),
		kong.Description("Rewrite relative README image links to absolute raw URLs pinned to a git revision."),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}

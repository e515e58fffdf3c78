// Command pft tracks a personal investment portfolio.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
)

func main() {
	// when invoked by the shell for completion, this prints the candidates and exits.
	cmd.Completion().Complete("pft")

	commander := subcommands.NewCommander(flag.CommandLine, "pft")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

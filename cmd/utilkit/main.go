// Package main implements utilkit, a demo CLI for the utilkit utilities.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/takuo/go-utilkit/cmd/utilkit/command"
)

func main() {
	cli := &command.CLI{}
	parser := kong.Must(cli, &kong.Vars{"version": fmt.Sprintf("utilkit: %s", command.Version())},
		kong.Name("utilkit"),
		kong.Description("Small arithmetic, greeting, filtering and delayed-fetch utilities."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}
	if err := ctx.Run(command.NewRuntime()); err != nil {
		log.Fatal(err)
	}
}

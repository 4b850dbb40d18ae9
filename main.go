package main

import (
	"log"
	"os"

	"github.com/abiiranathan/ethicsprep/cli"
)

// Default configuration for the CLI
var config = &cli.DefaultConfig

func main() {
	log.SetPrefix("[ethicsprep]: ")
	log.SetFlags(log.Lshortfile)

	// Parse the command line arguments
	ctx := cli.DefineFlags(config)
	subcmd, err := ctx.Parse(os.Args)
	if err != nil {
		log.Fatalln(err)
	}

	// If the subcommand is nil, print the usage and exit
	if subcmd == nil {
		ctx.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	// Run the subcommand
	subcmd.Handler()
}

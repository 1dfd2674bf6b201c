/*
main is the entry point for the megane command line utility. It is kept
separate from the application definition below to make application()
independently testable.

Initial arg parsing and app definition is done entirely through
"github.com/urfave/cli/v2": https://github.com/urfave/cli/blob/master/docs/v2/manual.md
*/
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the megane CLI: parse, hash, and diff subcommands
// over the five text formats and XTC.
func application() *cli.App {
	return &cli.App{
		Name:  "megane",
		Usage: "Parse and inspect molecular structure and trajectory files.",

		Commands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "Parse a structure file and print a JSON summary.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Usage:    "File format: pdb, gro, xyz, mol, top, or xtc.",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "n-atoms",
						Usage: "Atom count, required only for the top format.",
					},
				},
				Action: func(c *cli.Context) error {
					return parseCommand(c)
				},
			},
			{
				Name:  "hash",
				Usage: "Parse a structure file and print its content fingerprint.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Usage:    "File format: pdb, gro, xyz, mol, top, or xtc.",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "n-atoms",
						Usage: "Atom count, required only for the top format.",
					},
					&cli.StringFlag{
						Name:  "algo",
						Value: "sha256",
						Usage: "Digest algorithm: sha256, sha3-256, blake2b-256, blake2s-256, ripemd160, or blake3.",
					},
				},
				Action: func(c *cli.Context) error {
					return hashCommand(c)
				},
			},
			{
				Name:      "diff",
				Usage:     "Parse two structure files and print a character-level diff of their JSON summaries.",
				ArgsUsage: "<fileA> <fileB>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Usage:    "File format: pdb, gro, xyz, mol, top, or xtc.",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "n-atoms",
						Usage: "Atom count, required only for the top format.",
					},
				},
				Action: func(c *cli.Context) error {
					return diffCommand(c)
				},
			},
		},
	}
}

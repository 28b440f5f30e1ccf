package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                   "lga",
		Usage:                  "Logseq graph analyzer: dangling links, namespace conflicts, journal gaps",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "graph",
				Aliases: []string{"g"},
				Usage:   "Path to the Logseq graph folder",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "global-config",
				Usage: "Path to an optional global config.edn override",
			},
		},
		Commands: []*cli.Command{
			analyzeCommand,
			statusCommand,
			cacheCommand,
			mcpServeCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lga: %v\n", err)
		os.Exit(1)
	}
}

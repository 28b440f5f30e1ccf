package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/logseq-analyzer/lga/internal/cache"
)

var cacheCommand = &cli.Command{
	Name:  "cache",
	Usage: "Inspect or reset the persistent mtime cache",
	Subcommands: []*cli.Command{
		{
			Name:  "stats",
			Usage: "Print cache hit/miss counters",
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return err
				}
				dbPath := filepath.Join(cfg.GraphFolder, "logseq", ".lga-cache")
				ch, err := cache.Open(dbPath, false)
				if err != nil {
					return fmt.Errorf("opening cache: %w", err)
				}
				defer ch.Close()
				stats := ch.Stats()
				fmt.Printf("Hits:   %d\n", stats.Hits)
				fmt.Printf("Misses: %d\n", stats.Misses)
				return nil
			},
		},
		{
			Name:  "reset",
			Usage: "Delete the persistent cache",
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return err
				}
				dbPath := filepath.Join(cfg.GraphFolder, "logseq", ".lga-cache")
				ch, err := cache.Open(dbPath, true)
				if err != nil {
					return fmt.Errorf("resetting cache: %w", err)
				}
				defer ch.Close()
				fmt.Println("cache reset")
				return nil
			},
		},
	},
}

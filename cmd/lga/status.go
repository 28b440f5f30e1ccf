package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Print the resolved configuration for a graph folder",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		fmt.Printf("Graph folder:    %s\n", cfg.GraphFolder)
		fmt.Printf("Pages dir:       %s\n", cfg.Dirs.Pages)
		fmt.Printf("Journals dir:    %s\n", cfg.Dirs.Journals)
		fmt.Printf("Whiteboards dir: %s\n", cfg.Dirs.Whiteboards)
		fmt.Printf("Assets dir:      %s\n", cfg.Dirs.Assets)
		fmt.Printf("Draws dir:       %s\n", cfg.Dirs.Draws)
		fmt.Printf("Name format:     %s\n", cfg.NameFormat)
		fmt.Printf("Journal file fmt:  %s\n", cfg.JournalFormats.FileNameFormat)
		fmt.Printf("Journal title fmt: %s\n", cfg.JournalFormats.PageTitleFormat)
		fmt.Printf("Report format:   %s\n", cfg.ReportFormat)
		fmt.Printf("Excludes (%d):\n", len(cfg.Exclude))
		for _, pattern := range cfg.Exclude {
			fmt.Printf("  %s\n", pattern)
		}
		return nil
	},
}

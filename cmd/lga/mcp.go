package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/logseq-analyzer/lga/internal/analysis"
	lgamcp "github.com/logseq-analyzer/lga/internal/mcp"
)

var mcpServeCommand = &cli.Command{
	Name:  "mcp",
	Usage: "Run one analysis pass, then serve its results over MCP (stdio)",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		ch, err := openCache(c, cfg)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		if ch != nil {
			defer ch.Close()
		}

		result, err := analysis.Run(analysis.Options{Cfg: cfg, Cache: ch})
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sig
			cancel()
		}()

		server := lgamcp.NewServer(result)
		return server.Start(ctx)
	},
}

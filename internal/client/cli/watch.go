package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing query. Usage: livequery watch <query> [limit]")
	}
	if err := c.requireLogin(); err != nil {
		return err
	}

	expr, err := parseQuery(args[0])
	if err != nil {
		return err
	}
	limit, err := parseLimit(args, 1)
	if err != nil {
		return err
	}

	v, err := c.openLive(ctx, expr, true)
	if err != nil {
		return err
	}
	defer func() { _ = v.Close() }()

	c.io.Println("=== Watching ===")
	c.io.Printf("Query ID: %s\n", v.subscriber.QueryID())
	c.io.Println()

	if _, err := v.subscriber.Rewind(ctx, limit); err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	c.io.Println()
	c.io.Println("Following changes, press Ctrl+C to stop.")

	<-ctx.Done()
	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRewind(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing query. Usage: livequery rewind <query> [limit]")
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

	v, err := c.openStatic(ctx, expr)
	if err != nil {
		return err
	}
	defer func() { _ = v.Close() }()

	more, err := v.subscriber.Rewind(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch objects: %w", err)
	}

	c.io.Println("=== Query Results ===")

	objects := v.collection.Objects()
	if len(objects) == 0 {
		c.io.Println()
		c.io.Println("No objects found.")
		return nil
	}

	c.io.Printf("Found %d object(s):\n", len(objects))
	for _, obj := range objects {
		if err := objectTmpl.Execute(c.io, obj); err != nil {
			return fmt.Errorf("failed to render object: %w", err)
		}
	}

	if more {
		c.io.Println()
		c.io.Println("More objects match. Increase the limit to see them.")
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/models"
)

func (c *Cli) runPut(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing object. Usage: livequery put <object>")
	}
	if err := c.requireLogin(); err != nil {
		return err
	}

	obj, err := parseObject(args[0])
	if err != nil {
		return err
	}

	// Подтверждение записи приходит через live-запрос на свои объекты
	v, err := c.openLive(ctx, models.Query{models.FieldOwnerID: c.session.OwnerID()}, false)
	if err != nil {
		return err
	}
	defer func() { _ = v.Close() }()

	id, err := v.collection.Update(ctx, obj)
	if err != nil {
		var unconfirmed *errs.UnconfirmedWriteError
		if errors.As(err, &unconfirmed) {
			return fmt.Errorf("%w. The server accepted the write but never delivered it back", err)
		}
		return fmt.Errorf("failed to save object: %w", err)
	}

	c.io.Println("✓ Object saved!")
	c.io.Printf("ID: %s\n", id)

	return nil
}

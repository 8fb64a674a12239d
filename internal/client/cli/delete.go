package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/models"
	"github.com/iudanet/livequery/internal/validation"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing object ID. Usage: livequery delete <id>")
	}
	if err := c.requireLogin(); err != nil {
		return err
	}

	objectID := args[0]
	if err := validation.ValidateObjectID(objectID); err != nil {
		return fmt.Errorf("invalid object ID: %w", err)
	}

	// Коллекция удаляет только известные ей объекты, поэтому сначала загружаем объект
	v, err := c.openStatic(ctx, models.Query{models.FieldID: objectID})
	if err != nil {
		return err
	}
	defer func() { _ = v.Close() }()

	if _, err := v.subscriber.Rewind(ctx, 1); err != nil {
		return fmt.Errorf("failed to fetch object: %w", err)
	}

	if err := v.collection.Delete(ctx, objectID); err != nil {
		var unknown *errs.UnknownObjectError
		if errors.As(err, &unknown) {
			return fmt.Errorf("object not found with ID: %s", objectID)
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	c.io.Println("✓ Object deleted!")
	return nil
}

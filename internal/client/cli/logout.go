package cli

import (
	"context"
	"fmt"
)

// runLogout стирает токен и owner id; повторный logout ничего не делает
func (c *Cli) runLogout(ctx context.Context) error {
	if !c.session.LoggedIn() {
		c.io.Println("Not logged in, nothing to do.")
		return nil
	}

	owner := c.session.OwnerID()
	if err := c.session.LogOut(ctx); err != nil {
		return fmt.Errorf("failed to log out %s: %w", owner, err)
	}

	c.logger.Info("session cleared", "owner_id", owner)
	c.io.Printf("Logged out %s. Stored token removed from %s.\n", owner, c.cfg.DBPath)
	return nil
}

package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.session.LoggedIn() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'livequery login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Owner ID: %s\n", c.session.OwnerID())
	c.io.Printf("Server: %s\n", c.cfg.ServerURL)

	// Непрозрачный токен не несет срока действия
	if expiresAt := c.session.Expiry(); !expiresAt.IsZero() {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	c.io.Println()
	if c.sealed {
		c.io.Println("✓ Credentials are encrypted at rest")
	} else {
		c.io.Println("⚠️  Credentials are stored unencrypted")
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if c.session.LoggedIn() {
		c.io.Printf("Already logged in as %s\n", c.session.OwnerID())
		return nil
	}

	// Слушатель должен работать до того, как откроется страница авторизации
	if err := c.redirector.Start(); err != nil {
		return fmt.Errorf("failed to start redirect listener: %w", err)
	}
	defer func() {
		if err := c.redirector.Close(); err != nil {
			c.logger.Warn("failed to stop redirect listener", "error", err)
		}
	}()

	if err := c.session.LogIn(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("Waiting for the authorization page to redirect back...")
	location, err := c.redirector.Wait(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := c.session.HandleRedirect(ctx, location); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Owner ID: %s\n", c.session.OwnerID())
	if c.sealed {
		c.io.Println("Your session has been saved securely.")
	} else {
		c.io.Println("Your session has been saved unencrypted. Set a passphrase to seal it.")
	}

	return nil
}

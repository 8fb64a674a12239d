package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "rewind":
		return c.runRewind(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "put":
		return c.runPut(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireLogin проверяет, что сессия аутентифицирована
func (c *Cli) requireLogin() error {
	if !c.session.LoggedIn() {
		return fmt.Errorf("not authenticated. Please run 'livequery login' first")
	}
	return nil
}

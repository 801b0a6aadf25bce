package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing share ID. Usage: sharesync delete <id> | sharesync delete --all")
	}

	if args[0] == "--all" {
		return c.runDeleteAll(ctx)
	}
	shareID := args[0]

	c.io.Println("=== Delete Share ===")
	c.io.Println()

	confirm, err := c.io.ReadInput(fmt.Sprintf("Are you sure you want to delete share %s? (yes/no): ", shareID))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.syncer.DeleteShare(ctx, shareID); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}

	c.io.Println()
	c.io.Printf("%s Share deleted.\n", color.GreenString("✓"))

	return nil
}

func (c *Cli) runDeleteAll(ctx context.Context) error {
	c.io.Println("=== Delete ALL Shares ===")
	c.io.Println()

	confirm, err := c.io.ReadInput("This removes every share on the server. Are you sure? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.syncer.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete all shares: %w", err)
	}

	c.io.Println()
	c.io.Printf("%s All shares deleted.\n", color.GreenString("✓"))

	return nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
)

func (c *Cli) runQueue(ctx context.Context) error {
	c.io.Println("=== Offline Queue ===")
	c.io.Println()

	items, err := c.pending.Items(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	if len(items) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	c.io.Printf("%d operation(s) waiting:\n", len(items))
	c.io.Println()

	for i, op := range items {
		c.io.Printf("%d. %s %s\n", i+1, op.Kind, op.EntityID)
		c.io.Printf("   Queued:   %s\n", op.CreatedAt.Format(time.RFC3339))
		if op.Attempts > 0 {
			c.io.Printf("   Attempts: %d\n", op.Attempts)
		}
		if op.LastError != "" {
			c.io.Printf("   Last error: %s\n", color.RedString(op.LastError))
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runExport(ctx context.Context) error {
	data, err := c.pending.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export queue: %w", err)
	}

	if _, err := c.io.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func (c *Cli) runClearQueue(ctx context.Context) error {
	c.io.Println("=== Clear Offline Queue ===")
	c.io.Println()

	confirm, err := c.io.ReadInput("Queued operations will never reach the server. Are you sure? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.pending.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	c.io.Println()
	c.io.Printf("%s Queue cleared.\n", color.GreenString("✓"))
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"sharesync/internal/retry"
	"sharesync/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing share ID. Usage: sharesync update <id>")
	}
	shareID := args[0]

	c.io.Println("=== Update Share ===")
	c.io.Println()
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	title, err := c.io.ReadInput("New title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	content, err := c.io.ReadInput("New content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	var patch api.SharePatch
	if title != "" {
		patch.Title = &title
	}
	if content != "" {
		patch.Content = &content
	}
	if patch.Title == nil && patch.Content == nil {
		c.io.Println()
		c.io.Println("Nothing to update.")
		return nil
	}

	share, err := c.syncer.UpdateShare(ctx, shareID, patch)
	if err != nil {
		if retry.Classify(err).Retryable() {
			size, _ := c.syncer.PendingQueueSize(ctx)
			c.io.Println()
			c.io.Printf("%s Server unreachable, update queued for later delivery (%d pending).\n",
				color.YellowString("⚠"), size)
			c.io.Println("Run 'sharesync retry' when the connection is back.")
			return nil
		}
		return fmt.Errorf("failed to update share: %w", err)
	}

	c.io.Println()
	c.io.Printf("%s Share updated!\n", color.GreenString("✓"))
	c.io.Printf("  Version: %d\n", share.Version)

	return nil
}

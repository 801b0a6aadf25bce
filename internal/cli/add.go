package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"sharesync/internal/retry"
	"sharesync/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Share ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	pinned, err := c.io.ReadInput("Pin this share? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read pin flag: %w", err)
	}

	share, err := c.syncer.SaveShare(ctx, api.CreateShareRequest{
		Title:   title,
		Content: content,
		Pinned:  pinned == "yes" || pinned == "y",
	})
	if err != nil {
		if retry.Classify(err).Retryable() {
			size, _ := c.syncer.PendingQueueSize(ctx)
			c.io.Println()
			c.io.Printf("%s Server unreachable, share queued for later delivery (%d pending).\n",
				color.YellowString("⚠"), size)
			c.io.Println("Run 'sharesync retry' when the connection is back.")
			return nil
		}
		return fmt.Errorf("failed to add share: %w", err)
	}

	c.io.Println()
	c.io.Printf("%s Share added!\n", color.GreenString("✓"))
	c.io.Printf("  ID: %s\n", share.ID)

	return nil
}

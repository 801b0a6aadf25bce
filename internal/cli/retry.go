package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"sharesync/internal/models"
	"sharesync/internal/sync"
)

func (c *Cli) runRetry(ctx context.Context) error {
	c.io.Println("=== Replay Offline Queue ===")
	c.io.Println()

	size, err := c.syncer.PendingQueueSize(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending queue: %w", err)
	}
	if size == 0 {
		c.io.Println("Queue is empty, nothing to replay.")
		return nil
	}

	c.io.Printf("Replaying %d operation(s)...\n", size)
	c.io.Println()

	result, err := c.syncer.ReplayQueue(ctx, sync.ReplayCallbacks{
		OnSuccess: func(op models.PendingOperation) {
			c.io.Printf("%s delivered %s %s\n", color.GreenString("✓"), op.Kind, op.EntityID)
		},
		OnItemFailure: func(op models.PendingOperation, delay time.Duration, err error) {
			c.io.Printf("%s %s %s failed (attempt %d): %v, retrying in %s\n",
				color.YellowString("⚠"), op.Kind, op.EntityID, op.Attempts, err, delay.Round(time.Millisecond))
		},
	})
	if err != nil {
		return fmt.Errorf("replay interrupted: %w", err)
	}

	c.io.Println()
	c.io.Printf("Delivered: %d\n", result.Delivered)
	if result.Dropped > 0 {
		c.io.Printf("Dropped:   %s\n", color.RedString("%d", result.Dropped))
	}
	if result.Remaining > 0 {
		c.io.Printf("Remaining: %d\n", result.Remaining)
		c.io.Println()
		c.io.Println("Run 'sharesync retry' again to continue.")
	}

	return nil
}

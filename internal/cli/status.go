package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"sharesync/internal/models"
	"sharesync/internal/telemetry"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Synchronization Status ===")
	c.io.Println()

	for _, scope := range []string{telemetry.ScopeShare, telemetry.ScopeLayout, telemetry.ScopeQueue} {
		status := c.syncer.Status(scope)
		c.io.Printf("%-8s %s", scope, colorState(status.State))
		if !status.At.IsZero() {
			c.io.Printf("  (%s)", status.At.Format(time.RFC3339))
		}
		if status.Message != "" {
			c.io.Printf("  %s", status.Message)
		}
		c.io.Println()
	}

	size, err := c.syncer.PendingQueueSize(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending queue: %w", err)
	}

	c.io.Println()
	if size > 0 {
		c.io.Printf("%s Pending sync: %d operation(s) waiting to be delivered\n",
			color.YellowString("⚠"), size)
		c.io.Println("Run 'sharesync retry' to replay the offline queue.")
	} else {
		c.io.Printf("%s All operations delivered to server\n", color.GreenString("✓"))
	}

	return nil
}

func colorState(state models.SyncState) string {
	switch state {
	case models.StateSuccess:
		return color.GreenString(string(state))
	case models.StateError:
		return color.RedString(string(state))
	case models.StatePending:
		return color.YellowString(string(state))
	default:
		return string(state)
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

func (c *Cli) runList(ctx context.Context) error {
	c.io.Println("=== Shares ===")
	c.io.Println()

	shares, err := c.syncer.LoadShares(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shares: %w", err)
	}

	if len(shares) == 0 {
		c.io.Println("No shares found.")
		c.io.Println()
		c.io.Println("Use 'sharesync add' to create your first share.")
		return nil
	}

	c.io.Printf("Found %d share(s):\n", len(shares))
	c.io.Println()

	for i, share := range shares {
		title := share.Title
		if title == "" {
			title = "(untitled)"
		}
		if share.Pinned {
			c.io.Printf("%d. %s %s\n", i+1, color.YellowString("★"), color.New(color.Bold).Sprint(title))
		} else {
			c.io.Printf("%d. %s\n", i+1, title)
		}
		c.io.Printf("   ID:      %s\n", share.ID)
		c.io.Printf("   Version: %d\n", share.Version)
		if share.Content != "" {
			c.io.Printf("   Content: %s\n", share.Content)
		}
		c.io.Println()
	}

	return nil
}

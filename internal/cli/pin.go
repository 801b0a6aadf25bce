package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

func (c *Cli) runPin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing share ID. Usage: sharesync pin <id>")
	}
	shareID := args[0]

	// Запись должна быть в отображаемом состоянии — подгружаем с сервера
	if _, err := c.syncer.LoadShares(ctx); err != nil {
		return fmt.Errorf("failed to load shares: %w", err)
	}

	if err := c.syncer.TogglePin(ctx, shareID); err != nil {
		return fmt.Errorf("failed to toggle pin: %w", err)
	}

	c.io.Printf("%s Pin toggled for %s.\n", color.GreenString("✓"), shareID)
	return nil
}

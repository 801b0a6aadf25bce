package cli

import (
	"context"
	"fmt"

	"sharesync/internal/cli/iocli"
	"sharesync/internal/models"
	"sharesync/internal/queue"
	"sharesync/internal/sync"
	"sharesync/pkg/api"
)

//go:generate moq -out syncer_mock.go . Syncer
//go:generate moq -out pending_mock.go . Pending

// Syncer — операции координатора синхронизации, нужные командам CLI.
type Syncer interface {
	LoadShares(ctx context.Context) ([]*models.Share, error)
	SaveShare(ctx context.Context, req api.CreateShareRequest) (*models.Share, error)
	UpdateShare(ctx context.Context, id string, patch api.SharePatch) (*models.Share, error)
	DeleteShare(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	TogglePin(ctx context.Context, id string) error
	Status(scope string) models.SyncStatus
	PendingQueueSize(ctx context.Context) (int, error)
	ReplayQueue(ctx context.Context, callbacks sync.ReplayCallbacks) (*queue.ReplayResult, error)
}

// Pending — доступ к содержимому offline-очереди.
type Pending interface {
	Items(ctx context.Context) ([]models.PendingOperation, error)
	Export(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

type Cli struct {
	syncer  Syncer
	pending Pending
	io      iocli.IO
}

func New(syncer Syncer, pending Pending, io iocli.IO) *Cli {
	return &Cli{
		syncer:  syncer,
		pending: pending,
		io:      io,
	}
}

func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		return c.runList(ctx)
	case "add":
		return c.runAdd(ctx)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "pin":
		return c.runPin(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "queue":
		return c.runQueue(ctx)
	case "retry":
		return c.runRetry(ctx)
	case "export":
		return c.runExport(ctx)
	case "clear-queue":
		return c.runClearQueue(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("ShareSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sharesync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local database (default: sharesync-client.db)")
	fmt.Println("  --user ID       User ID for the offline queue namespace")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  list            Load shares from server and print them")
	fmt.Println("  add             Add a new share (interactive)")
	fmt.Println("  update <id>     Update a share (interactive, empty input keeps current value)")
	fmt.Println("  delete <id>     Delete a share")
	fmt.Println("  delete --all    Delete all shares")
	fmt.Println("  pin <id>        Toggle the pinned flag of a share")
	fmt.Println("  status          Show synchronization status per scope")
	fmt.Println("  queue           List operations waiting in the offline queue")
	fmt.Println("  retry           Replay the offline queue against the server")
	fmt.Println("  export          Print the offline queue as JSON")
	fmt.Println("  clear-queue     Drop all queued operations")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SHARESYNC_SERVER_URL   Server URL")
	fmt.Println("  SHARESYNC_TOKEN        Bearer token for API requests")
	fmt.Println("  SHARESYNC_USER_ID      User ID")
	fmt.Println("  SHARESYNC_DB_PATH      Path to local database")
	fmt.Println()
	fmt.Println("Variables can also be placed in a .env file next to the binary.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sharesync list")
	fmt.Println("  sharesync add")
	fmt.Println("  sharesync update b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  sharesync --server https://example.com retry")
}

package cli

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharesync/internal/cli/iocli"
	"sharesync/internal/models"
	"sharesync/internal/queue"
	syncsvc "sharesync/internal/sync"
	"sharesync/pkg/api"
)

func quietIO() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
	}
}

// collectOutput собирает весь вывод mock IO в одну строку для проверок
func collectOutput(mock *iocli.IOMock) string {
	var sb strings.Builder
	for _, call := range mock.PrintlnCalls() {
		for _, arg := range call.A {
			if s, ok := arg.(string); ok {
				sb.WriteString(s)
				sb.WriteString("\n")
			}
		}
	}
	for _, call := range mock.PrintfCalls() {
		sb.WriteString(call.Format)
		for _, arg := range call.A {
			if s, ok := arg.(string); ok {
				sb.WriteString(s)
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestCli_runList_Empty(t *testing.T) {
	mockIO := quietIO()
	mockSyncer := &SyncerMock{
		LoadSharesFunc: func(ctx context.Context) ([]*models.Share, error) {
			return []*models.Share{}, nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "list", nil)
	require.NoError(t, err)

	assert.Len(t, mockSyncer.LoadSharesCalls(), 1)
	assert.Contains(t, collectOutput(mockIO), "No shares found.")
}

func TestCli_runList_PrintsShares(t *testing.T) {
	mockIO := quietIO()
	mockSyncer := &SyncerMock{
		LoadSharesFunc: func(ctx context.Context) ([]*models.Share, error) {
			return []*models.Share{
				{ID: "s1", Title: "greeting", Content: "hello", Version: 3, Pinned: true},
				{ID: "s2", Title: "farewell", Content: "bye", Version: 1},
			}, nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "list", nil)
	require.NoError(t, err)

	output := collectOutput(mockIO)
	assert.Contains(t, output, "s1")
	assert.Contains(t, output, "s2")
	assert.Contains(t, output, "hello")
}

func TestCli_runDelete_Cancelled(t *testing.T) {
	mockIO := quietIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "no", nil
	}
	mockSyncer := &SyncerMock{
		DeleteShareFunc: func(ctx context.Context, id string) error {
			t.Error("DeleteShare must not be called when the user declines")
			return nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "delete", []string{"s1"})
	require.NoError(t, err)
	assert.Empty(t, mockSyncer.DeleteShareCalls())
}

func TestCli_runDelete_Confirmed(t *testing.T) {
	mockIO := quietIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "yes", nil
	}
	mockSyncer := &SyncerMock{
		DeleteShareFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "delete", []string{"s1"})
	require.NoError(t, err)

	calls := mockSyncer.DeleteShareCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "s1", calls[0].ID)
}

func TestCli_runDelete_All(t *testing.T) {
	mockIO := quietIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "yes", nil
	}
	mockSyncer := &SyncerMock{
		DeleteAllFunc: func(ctx context.Context) error {
			return nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "delete", []string{"--all"})
	require.NoError(t, err)
	assert.Len(t, mockSyncer.DeleteAllCalls(), 1)
}

func TestCli_runAdd_QueuedWhenOffline(t *testing.T) {
	mockIO := quietIO()
	inputs := []string{"title", "content", "no"}
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		next := inputs[0]
		inputs = inputs[1:]
		return next, nil
	}
	mockSyncer := &SyncerMock{
		SaveShareFunc: func(ctx context.Context, req api.CreateShareRequest) (*models.Share, error) {
			return nil, &url.Error{Op: "Post", URL: "http://localhost", Err: errors.New("refused")}
		},
		PendingQueueSizeFunc: func(ctx context.Context) (int, error) {
			return 1, nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	// Временный отказ не считается ошибкой команды — операция в очереди
	err := cli.Run(context.Background(), "add", nil)
	require.NoError(t, err)
	assert.Contains(t, collectOutput(mockIO), "retry")
}

func TestCli_runAdd_TerminalErrorReported(t *testing.T) {
	mockIO := quietIO()
	inputs := []string{"title", "content", "no"}
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		next := inputs[0]
		inputs = inputs[1:]
		return next, nil
	}
	mockSyncer := &SyncerMock{
		SaveShareFunc: func(ctx context.Context, req api.CreateShareRequest) (*models.Share, error) {
			return nil, &api.Error{Status: 400, Message: "validation"}
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "add", nil)
	require.Error(t, err)
}

func TestCli_runQueue_ListsOperations(t *testing.T) {
	mockIO := quietIO()
	mockPending := &PendingMock{
		ItemsFunc: func(ctx context.Context) ([]models.PendingOperation, error) {
			return []models.PendingOperation{
				{ID: "op1", Kind: models.OpUpdate, EntityID: "s1", Attempts: 2, LastError: "boom"},
			}, nil
		},
	}

	cli := New(nil, mockPending, mockIO)

	err := cli.Run(context.Background(), "queue", nil)
	require.NoError(t, err)

	output := collectOutput(mockIO)
	assert.Contains(t, output, "s1")
	assert.Contains(t, output, "boom")
}

func TestCli_runRetry_EmptyQueue(t *testing.T) {
	mockIO := quietIO()
	mockSyncer := &SyncerMock{
		PendingQueueSizeFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "retry", nil)
	require.NoError(t, err)
	assert.Empty(t, mockSyncer.ReplayQueueCalls(), "Replay is skipped for an empty queue")
}

func TestCli_runRetry_ReportsResult(t *testing.T) {
	mockIO := quietIO()
	mockSyncer := &SyncerMock{
		PendingQueueSizeFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
		ReplayQueueFunc: func(ctx context.Context, callbacks syncsvc.ReplayCallbacks) (*queue.ReplayResult, error) {
			callbacks.OnSuccess(models.PendingOperation{ID: "op1", Kind: models.OpCreate, EntityID: "s1"})
			callbacks.OnSuccess(models.PendingOperation{ID: "op2", Kind: models.OpUpdate, EntityID: "s2"})
			return &queue.ReplayResult{Delivered: 2}, nil
		},
	}

	cli := New(mockSyncer, nil, mockIO)

	err := cli.Run(context.Background(), "retry", nil)
	require.NoError(t, err)
	assert.Len(t, mockSyncer.ReplayQueueCalls(), 1)
	assert.Contains(t, collectOutput(mockIO), "Delivered")
}

func TestCli_runClearQueue_Confirmed(t *testing.T) {
	mockIO := quietIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "y", nil
	}
	mockPending := &PendingMock{
		ClearFunc: func(ctx context.Context) error {
			return nil
		},
	}

	cli := New(nil, mockPending, mockIO)

	err := cli.Run(context.Background(), "clear-queue", nil)
	require.NoError(t, err)
	assert.Len(t, mockPending.ClearCalls(), 1)
}

func TestCli_runExport_WritesJSON(t *testing.T) {
	mockIO := quietIO()
	var written []byte
	mockIO.WriteFunc = func(p []byte) (int, error) {
		written = append(written, p...)
		return len(p), nil
	}
	mockPending := &PendingMock{
		ExportFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id":"op1"}]`), nil
		},
	}

	cli := New(nil, mockPending, mockIO)

	err := cli.Run(context.Background(), "export", nil)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"op1"`)
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	cli := New(nil, nil, quietIO())

	err := cli.Run(context.Background(), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

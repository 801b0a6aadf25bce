package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sharesync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет контракт удалённого хранилища записей.
// Любой метод может вернуть *api.Error со статусом ответа —
// по нему классификатор решает, временный это отказ или нет.
type ClientAPI interface {
	ListShares(ctx context.Context) ([]api.Share, error)
	CreateShare(ctx context.Context, req api.CreateShareRequest) (*api.Share, error)
	UpdateShare(ctx context.Context, id string, patch api.SharePatch) (*api.Share, error)
	DeleteShares(ctx context.Context, ids []string) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент.
// token опционален и добавляется в Authorization каждого запроса.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// ListShares возвращает все записи пользователя
func (c *Client) ListShares(ctx context.Context) ([]api.Share, error) {
	var resp api.ListSharesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/shares", nil, &resp); err != nil {
		return nil, fmt.Errorf("list shares request failed: %w", err)
	}
	return resp.Shares, nil
}

// CreateShare создает новую запись
func (c *Client) CreateShare(ctx context.Context, req api.CreateShareRequest) (*api.Share, error) {
	var resp api.Share
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/shares", req, &resp); err != nil {
		return nil, fmt.Errorf("create share request failed: %w", err)
	}
	return &resp, nil
}

// UpdateShare применяет частичное обновление к записи
func (c *Client) UpdateShare(ctx context.Context, id string, patch api.SharePatch) (*api.Share, error) {
	var resp api.Share
	url := fmt.Sprintf("/api/v1/shares/%s", id)
	if err := c.doRequest(ctx, http.MethodPatch, url, api.UpdateShareRequest{Patch: patch}, &resp); err != nil {
		return nil, fmt.Errorf("update share request failed: %w", err)
	}
	return &resp, nil
}

// DeleteShares удаляет записи по списку идентификаторов
func (c *Client) DeleteShares(ctx context.Context, ids []string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/shares", api.DeleteSharesRequest{IDs: ids}, nil); err != nil {
		return fmt.Errorf("delete shares request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортная ошибка возвращается как есть (*url.Error),
		// чтобы классификатор распознал её как сетевую
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &api.Error{Status: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Code = errResp.Error
			apiErr.Message = errResp.Message
		} else {
			apiErr.Message = string(respBody)
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

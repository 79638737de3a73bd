package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	// ErrUnexpectedStatus - сервис ответил не 2xx
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrEmptyPayload - ответ успешный, но записей нет
	ErrEmptyPayload = errors.New("empty data received")
)

// maxErrorBody - сколько байт тела ошибки попадает в лог и текст ошибки
const maxErrorBody = 512

// Client - общий HTTP-клиент для GET-запросов к удаленным сервисам данных
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает новый клиент с таймаутом на запрос
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get выполняет GET и возвращает тело успешного ответа
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	c.logger.Debug("Calling remote API", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Remote API returned error",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("HTTP error! status: %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Remote API call successful",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))

	return body, nil
}

// GetJSON выполняет GET и декодирует JSON-ответ в out
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn("Failed to decode response", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Records декодирует ответ в виде массива объектов либо объекта с полем data
func (c *Client) Records(ctx context.Context, url string) ([]map[string]interface{}, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	records, err := DecodeRecords(body)
	if err != nil {
		c.logger.Warn("Failed to decode records", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return records, nil
}

// DecodeRecords разбирает полезную нагрузку: `[...]` или `{"data": [...]}`.
// Элементы, которые не являются объектами, пропускаются.
func DecodeRecords(body []byte) ([]map[string]interface{}, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		items, _ = v["data"].([]interface{})
	}

	records := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]interface{}); ok {
			records = append(records, m)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyPayload
	}
	return records, nil
}

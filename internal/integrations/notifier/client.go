package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	SinkSpreadsheet = "spreadsheet"
	SinkWebhook     = "webhook"
)

// Client HTTP-клиент, отправляющий запись POST-запросом с JSON телом
type Client struct {
	name       string
	url        string
	httpClient *http.Client
	accept     func(status int) bool
	log        Logger
}

// NewSpreadsheetClient клиент Google Apps Script, который дописывает запись в таблицу.
// Apps Script отвечает редиректом на страницу результата, поэтому 3xx тоже считается успехом.
func NewSpreadsheetClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		name: SinkSpreadsheet,
		url:  url,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		accept: func(status int) bool { return status >= 200 && status < 400 },
		log:    log,
	}
}

// NewWebhookClient клиент webhook автоматизации (n8n), который отправляет уведомление в чат
func NewWebhookClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		name: SinkWebhook,
		url:  url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		accept: func(status int) bool { return status >= 200 && status < 300 },
		log:    log,
	}
}

// Name имя получателя для логов и метрик
func (c *Client) Name() string {
	return c.name
}

// Enabled возвращает false, если адрес не настроен
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Send отправляет запись получателю
func (c *Client) Send(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if !c.accept(resp.StatusCode) {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s returned status %d: %s", ErrInvalidResponse, c.name, resp.StatusCode, string(respBody))
	}

	// Тело ответа не нужно, но его дочитываем для переиспользования соединения
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Info("Notifier: booking id=%s delivered to %s", payload.ID, c.name)
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/pkg/api"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером объектов
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient создает новый API клиент.
// baseURL это origin сервера, без завершающего слеша.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
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

// BaseURL возвращает origin сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthURL собирает адрес страницы авторизации
func (c *Client) AuthURL(clientID, redirectURI, state string) string {
	q := url.Values{}
	q.Set(api.ParamClientID, clientID)
	q.Set(api.ParamRedirectURI, redirectURI)
	q.Set(api.ParamState, state)

	return c.endpoint(api.PathAuth) + "?" + q.Encode()
}

// ExchangeCode обменивает код авторизации на bearer token.
// Неуспешный ответ возвращается как *errs.AuthExchangeError.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (*api.TokenResponse, error) {
	form := url.Values{}
	form.Set(api.ParamClientID, clientID)
	form.Set(api.ParamClientSecret, clientSecret)
	form.Set(api.ParamCode, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(api.PathToken), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, &errs.AuthExchangeError{Status: status, Detail: errorDetail(status, respBody)}
	}

	var resp api.TokenResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedToken, err)
	}

	return &resp, nil
}

// Do выполняет JSON запрос к REST глаголу сервера.
// Если token не пустой, добавляется заголовок Authorization: Bearer.
// Ответ не 2xx возвращается как *errs.RequestError.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	status, respBody, err := c.send(req)
	if err != nil {
		return err
	}

	// Проверяем статус код
	if !isSuccess(status) {
		return &errs.RequestError{Status: status, Detail: errorDetail(status, respBody)}
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// send выполняет запрос и читает тело ответа целиком
func (c *Client) send(req *http.Request) (int, []byte, error) {
	c.logger.Debug("http request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("http response", "path", req.URL.Path, "status", resp.StatusCode)
	return resp.StatusCode, respBody, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// errorDetail достает detail из тела ошибки, иначе текст статуса
func errorDetail(status int, body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return http.StatusText(status)
}

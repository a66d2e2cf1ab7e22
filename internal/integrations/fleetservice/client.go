package fleetservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с FleetService
// FleetService владеет справочниками судов и контейнеров (CRUD вне этого сервиса);
// здесь нужны только габариты судна и проверка существования контейнера
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FleetService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetShip получает судно по ID
func (c *Client) GetShip(ctx context.Context, shipID int64) (*Ship, error) {
	url := fmt.Sprintf("%s/internal/ships/%d", c.baseURL, shipID)

	var ship Ship
	if err := c.getJSON(ctx, url, &ship, ErrShipNotFound); err != nil {
		return nil, err
	}

	return &ship, nil
}

// GetContainer получает контейнер по ID
func (c *Client) GetContainer(ctx context.Context, containerID int64) (*Container, error) {
	url := fmt.Sprintf("%s/internal/containers/%d", c.baseURL, containerID)

	var container Container
	if err := c.getJSON(ctx, url, &container, ErrContainerNotFound); err != nil {
		return nil, err
	}

	return &container, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
// notFound возвращается как есть при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid identifier format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

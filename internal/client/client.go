package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker"
)

// SessionHeader - заголовок, в котором передаётся токен сессии
const SessionHeader = "X-Session-Id"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider - источник токена сессии. Пустая строка означает отсутствие сессии.
type TokenProvider interface {
	Token() string
}

// Requester - отправка запроса к API и получение сырого ответа
type Requester interface {
	Send(ctx context.Context, method string, endpoint string, opts *RequestOptions) (*Response, error)
}

// RequestOptions - параметры отдельного вызова действия
type RequestOptions struct {
	// Headers - дополнительные заголовки, перекрывают заголовки по умолчанию
	Headers http.Header
	// Data - тело запроса, кодируется в JSON для всех методов кроме GET
	Data any
	// Querystring - параметры строки запроса
	Querystring url.Values
	// Params - значения для подстановки в путь (:recordId)
	Params map[string]string
}

// Response - ответ API с прочитанным телом
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK - код ответа из диапазона 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
	tokens     TokenProvider
	Limiter    *RateLimiter
	Breaker    *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, httpClient HTTPClient, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		Limiter:    NewRateLimiter(),
		Breaker:    NewCircuitBreaker(DefaultBreakerFailures),
	}
}

// Send - отправляет запрос через ограничитель частоты и предохранитель.
// Ответ с любым кодом возвращается без ошибки, ошибка означает сбой транспорта.
func (c *Client) Send(ctx context.Context, method string, endpoint string, opts *RequestOptions) (*Response, error) {
	req, err := c.NewRequest(ctx, method, endpoint, opts)
	if err != nil {
		return nil, err
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var resp *Response
	_, err = c.Breaker.Execute(func() (interface{}, error) {
		r, err := c.do(req)
		if err != nil {
			return nil, err
		}
		resp = r
		// ответы 5xx считаются отказом сервиса для предохранителя
		if r.StatusCode >= http.StatusInternalServerError {
			return nil, ErrServiceUnavailable
		}
		return nil, nil
	})
	if resp != nil {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.Limiter.BlockFor(ParseRetryAfter(resp.Header))
		}
		return resp, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s %s: %w: %w", method, endpoint, ErrServiceUnavailable, err)
	}
	return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
}

// NewRequest - собирает HTTP запрос: заголовки по умолчанию, заголовки вызова,
// токен сессии и тело в JSON для методов кроме GET
func (c *Client) NewRequest(ctx context.Context, method string, endpoint string, opts *RequestOptions) (*http.Request, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	target := c.baseURL + endpoint
	if len(opts.Querystring) > 0 {
		target += "?" + opts.Querystring.Encode()
	}

	var body io.Reader
	hasBody := method != http.MethodGet && opts.Data != nil
	if hasBody {
		data, err := json.Marshal(opts.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for name, values := range opts.Headers {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(SessionHeader, token)
		}
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

package client

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

var (
	ErrServiceUnavailable = errors.New("calculator service unavailable")
	ErrInvalidResponse    = errors.New("invalid response body")
)

// ResponseError - ответ API с кодом вне диапазона 2xx
type ResponseError struct {
	StatusCode int
	// Body - разобранное JSON тело ответа либо текст, если тело не JSON
	Body any
}

// NewResponseError - разбирает тело неуспешного ответа
func NewResponseError(resp *Response) *ResponseError {
	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		body = string(resp.Body)
	}
	return &ResponseError{StatusCode: resp.StatusCode, Body: body}
}

func (e *ResponseError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Message - текст ошибки из тела ответа (поля message или error)
func (e *ResponseError) Message() string {
	switch body := e.Body.(type) {
	case string:
		return body
	case map[string]any:
		for _, key := range []string{"message", "error"} {
			if s, ok := body[key].(string); ok {
				return s
			}
		}
	}
	return ""
}

package client

import (
	"net/http"
	"time"

	"github.com/denmor86/calc-web/internal/logger"
)

// LoggingClient - обёртка над HTTPClient, логирует исходящие запросы
type LoggingClient struct {
	next HTTPClient
}

func NewLoggingClient(next HTTPClient) *LoggingClient {
	return &LoggingClient{next: next}
}

func (c *LoggingClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.next.Do(req)

	duration := time.Since(start)
	if err != nil {
		logger.Warnw("outgoing HTTP request failed",
			"uri", req.URL.RequestURI(),
			"method", req.Method,
			"duration", duration,
			"error", err,
		)
		return nil, err
	}

	logger.Debugw("sent outgoing HTTP request",
		"uri", req.URL.RequestURI(),
		"method", req.Method,
		"status", resp.StatusCode,
		"duration", duration,
		"size", resp.ContentLength,
	)
	return resp, nil
}

package adapters

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return NewContentFetcherWithClient(logger, &http.Client{Timeout: 30 * time.Second})
}

func NewContentFetcherWithClient(logger outbound.LoggerPort, client *http.Client) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: client,
	}
}

// FetchContent sends req once and returns the body of a 2xx response.
func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.Redacted(),
		})
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.Redacted(),
			})
		}
	}(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		err := fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
		c.logger.ErrorWithFields(err, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.Redacted(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, err
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.Redacted(),
		})
		return nil, err
	}

	return payload, nil
}

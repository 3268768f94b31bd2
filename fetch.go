package untar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const defaultMaxRetries = 5

// Fetch downloads an archive over HTTP and returns the raw body bytes,
// ready for Open. Transport errors and 5xx responses are retried with
// exponential backoff and jitter; any other non-200 status fails
// without retrying.
func Fetch(ctx context.Context, l *slog.Logger, url string) ([]byte, error) {
	client := &http.Client{
		Transport: &retryTransport{
			maxRetries: defaultMaxRetries,
			log:        l,
		},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download failed: %s", string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	l.Debug("fetched archive", "url", url, "size", len(data))

	return data, nil
}

package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrNotFound reports that a track identifier resolved to nothing.
var ErrNotFound = errors.New("track not found")

// Source fetches raw track text by identifier. Implementations may block;
// the renderer only calls it from LoadTrack.
type Source interface {
	FetchText(ctx context.Context, identifier string) (string, error)
}

// FileSource reads tracks from the local filesystem.
type FileSource struct{}

func (FileSource) FetchText(_ context.Context, identifier string) (string, error) {
	data, err := os.ReadFile(identifier)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, identifier)
		}
		return "", fmt.Errorf("failed to read track %s: %w", identifier, err)
	}
	return string(data), nil
}

// HTTPSource fetches tracks over HTTP(S).
type HTTPSource struct {
	Client *http.Client
}

func NewHTTPSource() *HTTPSource {
	return &HTTPSource{Client: &http.Client{Timeout: 30 * time.Second}}
}

func (s *HTTPSource) FetchText(ctx context.Context, identifier string) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, identifier, nil)
	if err != nil {
		return "", fmt.Errorf("invalid track URL %s: %w", identifier, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch track %s: %w", identifier, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch track %s: status %d", identifier, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read track %s: %w", identifier, err)
	}
	return string(body), nil
}

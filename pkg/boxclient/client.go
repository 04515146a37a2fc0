// Package boxclient provides the main entry point for creating jsonbox clients
package boxclient

import (
	"fmt"
	"strings"

	"github.com/kuy/jsonbox-go/internal/client"
	"github.com/kuy/jsonbox-go/internal/constants"
	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// New creates a typed client for the box in config. The caller's config is
// not modified.
func New[T any](config *jsonbox.Config) (jsonbox.Client[T], error) {
	if config == nil {
		return nil, jsonbox.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeEndpoint(config.BaseURL)

	client, err := client.New[T](&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NormalizeEndpoint trims a trailing slash and adds "https://" when the
// endpoint has no scheme. An empty endpoint yields the public service.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return constants.DefaultBaseURL
	}

	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = constants.DefaultScheme + endpoint
	}

	return endpoint
}

// NewWithBox creates a client for boxID on the public service.
func NewWithBox[T any](boxID string) (jsonbox.Client[T], error) {
	return New[T](&jsonbox.Config{
		BoxID: boxID,
	})
}

// NewWithEndpoint creates a client for boxID on a self-hosted service.
func NewWithEndpoint[T any](endpoint, boxID string) (jsonbox.Client[T], error) {
	return New[T](&jsonbox.Config{
		BoxID:   boxID,
		BaseURL: endpoint,
	})
}

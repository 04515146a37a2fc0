package jsonbox

import (
	"context"
	"net/http"
	"time"
)

// Client is a typed client for one box. T is the caller's record type; it
// must round-trip through encoding/json as a JSON object.
//
// Every method performs exactly one HTTP exchange. A Client holds only
// immutable configuration and is safe for concurrent use.
type Client[T any] interface {
	Reader[T]

	// Create stores one record and returns it with its metadata.
	Create(ctx context.Context, data T) (Record[T], error)

	// CreateBulk stores several records in one request. The returned slice
	// is assumed to be in request order; the service does not document
	// this guarantee.
	CreateBulk(ctx context.Context, data []T) ([]Record[T], error)

	// ReadAll lists the box with the default query.
	ReadAll(ctx context.Context) ([]Record[T], error)

	// Read starts a query against the box.
	Read() QueryBuilder[T]

	// Update replaces the record with the given id.
	Update(ctx context.Context, id string, data T) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// BoxID returns the box this client is bound to.
	BoxID() string

	// BaseURL returns the service endpoint.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
type Config struct {
	// BoxID: the box every request is addressed to. Required.
	BoxID string

	// BaseURL: service endpoint, e.g. "https://jsonbox.io". boxclient.New
	// fills in the default, trims a trailing slash and adds "https://" when
	// no scheme is present.
	BaseURL string

	// HTTPTimeout: per-request timeout. Zero means the package default.
	// Context deadlines passed to client methods apply as well.
	HTTPTimeout time.Duration

	// HTTPClient: optional transport to send requests through.
	HTTPClient *http.Client

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Debug: logs every request and response when a Logger is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

package client

import (
	"context"

	"github.com/kuy/jsonbox-go/internal/http"
	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

// Box implements jsonbox.Client for one box.
type Box[T any] struct {
	httpClient *http.Client
	boxID      string
	baseURL    string
}

var _ jsonbox.Client[map[string]interface{}] = (*Box[map[string]interface{}])(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *jsonbox.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	// A caller-supplied client keeps its own timeout.
	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	} else if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client for config.BoxID at config.BaseURL. The base URL is
// used verbatim; normalization is done by boxclient.New.
func New[T any](config *jsonbox.Config) (*Box[T], error) {
	if config == nil {
		return nil, jsonbox.ErrConfigRequired
	}

	if config.BoxID == "" {
		return nil, jsonbox.ErrBoxIDRequired
	}

	return &Box[T]{
		httpClient: http.NewClient(createHTTPClientOptions(config)...),
		boxID:      config.BoxID,
		baseURL:    config.BaseURL,
	}, nil
}

// BoxID implements jsonbox.Client.BoxID.
func (c *Box[T]) BoxID() string {
	return c.boxID
}

// BaseURL implements jsonbox.Client.BaseURL.
func (c *Box[T]) BaseURL() string {
	return c.baseURL
}

// Create implements jsonbox.Client.Create.
func (c *Box[T]) Create(ctx context.Context, data T) (jsonbox.Record[T], error) {
	body, err := jsonbox.EncodePayload(data)
	if err != nil {
		return jsonbox.Record[T]{}, err
	}

	resp, err := c.send(ctx, &http.Request{
		Method: "POST",
		URL:    jsonbox.CollectionURL(c.baseURL, c.boxID),
		Body:   body,
	})
	if err != nil {
		return jsonbox.Record[T]{}, err
	}

	return jsonbox.DecodeRecord[T](resp.Body)
}

// CreateBulk implements jsonbox.Client.CreateBulk.
func (c *Box[T]) CreateBulk(ctx context.Context, data []T) ([]jsonbox.Record[T], error) {
	if data == nil {
		data = []T{}
	}

	body, err := jsonbox.EncodePayload(data)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, &http.Request{
		Method: "POST",
		URL:    jsonbox.CollectionURL(c.baseURL, c.boxID),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	return jsonbox.DecodeRecords[T](resp.Body)
}

// ReadByID implements jsonbox.Client.ReadByID.
func (c *Box[T]) ReadByID(ctx context.Context, id string) (jsonbox.Record[T], error) {
	resp, err := c.send(ctx, &http.Request{
		Method: "GET",
		URL:    jsonbox.RecordURL(c.baseURL, c.boxID, id),
	})
	if err != nil {
		return jsonbox.Record[T]{}, err
	}

	return jsonbox.DecodeRecord[T](resp.Body)
}

// ReadByQuery implements jsonbox.Client.ReadByQuery.
func (c *Box[T]) ReadByQuery(ctx context.Context, query jsonbox.Query) ([]jsonbox.Record[T], error) {
	resp, err := c.send(ctx, &http.Request{
		Method: "GET",
		URL:    jsonbox.QueryURL(c.baseURL, c.boxID, query.Encode()),
	})
	if err != nil {
		return nil, err
	}

	return jsonbox.DecodeRecords[T](resp.Body)
}

// ReadAll implements jsonbox.Client.ReadAll.
func (c *Box[T]) ReadAll(ctx context.Context) ([]jsonbox.Record[T], error) {
	return c.ReadByQuery(ctx, jsonbox.NewQuery())
}

// Read implements jsonbox.Client.Read.
func (c *Box[T]) Read() jsonbox.QueryBuilder[T] {
	return jsonbox.NewQueryBuilder[T](c)
}

// Update implements jsonbox.Client.Update.
func (c *Box[T]) Update(ctx context.Context, id string, data T) error {
	body, err := jsonbox.EncodePayload(data)
	if err != nil {
		return err
	}

	_, err = c.send(ctx, &http.Request{
		Method: "PUT",
		URL:    jsonbox.RecordURL(c.baseURL, c.boxID, id),
		Body:   body,
	})

	return err
}

// Delete implements jsonbox.Client.Delete.
func (c *Box[T]) Delete(ctx context.Context, id string) error {
	_, err := c.send(ctx, &http.Request{
		Method: "DELETE",
		URL:    jsonbox.RecordURL(c.baseURL, c.boxID, id),
	})

	return err
}

// send performs one exchange and maps failures onto the jsonbox error types.
func (c *Box[T]) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, &jsonbox.NetworkError{Method: req.Method, URL: req.URL, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, jsonbox.DecodeErrorResponse(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

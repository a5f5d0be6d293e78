package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	// Image formats accepted by FetchImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"pg360/internal/model"

	"github.com/google/uuid"
)

// DefaultBaseURL is the API host used when nothing is configured.
const DefaultBaseURL = "http://localhost:8080"

const (
	categoriesPath = "/categorias"
	placesPath     = "/locais"
	eventsPath     = "/eventos"

	sourceHeader  = "pg360-admin"
	maxErrorBody  = 64 << 10
	maxImageBytes = 5 << 20
)

// Client wraps the events listing REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a client-wide timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new API client.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.get(ctx, categoriesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPlaces fetches every place.
func (c *Client) ListPlaces(ctx context.Context) ([]model.Place, error) {
	var out []model.Place
	if err := c.get(ctx, placesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEvents fetches every event.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, eventsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory posts a new category.
func (c *Client) CreateCategory(ctx context.Context, payload model.NewCategory) error {
	return c.post(ctx, categoriesPath, payload)
}

// CreatePlace posts a new place.
func (c *Client) CreatePlace(ctx context.Context, payload model.NewPlace) error {
	return c.post(ctx, placesPath, payload)
}

// CreateEvent posts a new event.
func (c *Client) CreateEvent(ctx context.Context, payload model.NewEvent) error {
	return c.post(ctx, eventsPath, payload)
}

// FetchImage downloads and decodes an image by absolute URL. Hosts other
// than the API's receive no API headers. Bodies are capped at maxImageBytes.
func (c *Client) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	resp, err := c.do(ctx, http.MethodGet, imageURL, nil, c.sameHost(imageURL))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode error: %w", err)
	}
	return img, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+path, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSON decode error: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("JSON encode error: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+path, body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) sameHost(rawURL string) bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}

// do executes a request and turns transport failures and non-2xx statuses
// into *NetworkError and *ServerError. The caller closes the body on success.
// apiHeaders adds the correlation and source headers the API logs.
func (c *Client) do(ctx context.Context, method, reqURL string, body []byte, apiHeaders bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}

	var correlationID string
	if apiHeaders {
		correlationID = uuid.NewString()
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Correlation-ID", correlationID)
		req.Header.Set("X-Source", sourceHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: reqURL, CorrelationID: correlationID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ServerError{
			Method:        method,
			URL:           reqURL,
			CorrelationID: correlationID,
			StatusCode:    resp.StatusCode,
			Body:          data,
		}
	}

	return resp, nil
}

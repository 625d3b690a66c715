package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buenrollo/spots-admin/internal/config"
	"github.com/buenrollo/spots-admin/internal/domain"
)

var (
	ErrSpotNotFound    = errors.New("spot not found")
	ErrSectionNotFound = errors.New("section not found")
)

// RemoteError carries the listings API's status code for a non-2xx reply.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("listings API returned %v: %v", e.StatusCode, e.Message)
}

// Client talks to the remote listings API that owns the spot records.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(conf *config.ListingsConfig) *Client {
	timeout := time.Duration(conf.TimeoutSeconds) * time.Second
	if conf.TimeoutSeconds <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    conf.BaseURL,
		apiKey:     conf.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateSpot posts a new spot payload and returns the created record.
func (c *Client) CreateSpot(ctx context.Context, payload *Payload) (domain.Spot, error) {
	return c.sendSpot(ctx, http.MethodPost, fmt.Sprintf("%v/spots", c.baseURL), payload)
}

// UpdateSpot puts an updated payload for an existing spot.
func (c *Client) UpdateSpot(ctx context.Context, spotID uint, payload *Payload) (domain.Spot, error) {
	return c.sendSpot(ctx, http.MethodPut, fmt.Sprintf("%v/spots/%v", c.baseURL, spotID), payload)
}

func (c *Client) sendSpot(ctx context.Context, method, url string, payload *Payload) (domain.Spot, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload.Body))
	if err != nil {
		return domain.Spot{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", payload.ContentType)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Spot{}, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Only an update addresses a specific spot; a 404 on create points at
	// the endpoint itself and surfaces as a remote error.
	if resp.StatusCode == http.StatusNotFound && method == http.MethodPut {
		return domain.Spot{}, ErrSpotNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Spot{}, remoteError(resp)
	}

	var spot domain.Spot
	if err = json.NewDecoder(resp.Body).Decode(&spot); err != nil {
		return domain.Spot{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return spot, nil
}

// GetSpots fetches the spots of one section.
func (c *Client) GetSpots(ctx context.Context, sectionID uint) ([]domain.Spot, error) {
	url := fmt.Sprintf("%v/secciones/%v/spots", c.baseURL, sectionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSectionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var spots []domain.Spot
	if err = json.NewDecoder(resp.Body).Decode(&spots); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	return spots, nil
}

// GetSections fetches all sections for the console's section view.
func (c *Client) GetSections(ctx context.Context) ([]domain.Section, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%v/secciones", c.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var sections []domain.Section
	if err = json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	return sections, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

func remoteError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	return &RemoteError{
		StatusCode: resp.StatusCode,
		Message:    string(bytes.TrimSpace(body)),
	}
}

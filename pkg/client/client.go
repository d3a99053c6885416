// Package client is a Go SDK for the internship-engine HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the requested internship does not exist
var ErrNotFound = errors.New("not found")

// Client is a Go SDK for internship-engine API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new internship-engine client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Candidate is the applicant profile sent to Recommend
type Candidate struct {
	Education string   `json:"education"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Location  string   `json:"location"`
}

// Internship represents a catalog record
type Internship struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Sector            string   `json:"sector"`
	Location          string   `json:"location"`
	IsRemote          bool     `json:"is_remote"`
	RequiredEducation string   `json:"required_education"`
	RequiredSkills    []string `json:"required_skills"`
	Duration          string   `json:"duration"`
	Stipend           string   `json:"stipend"`
	Description       string   `json:"description"`
}

// Match is a recommended internship with its score
type Match struct {
	Internship
	MatchScore  int    `json:"match_score"`
	MatchReason string `json:"match_reason"`
}

// Recommendations is the response of Recommend
type Recommendations struct {
	RecommendationID string  `json:"recommendation_id"`
	Recommendations  []Match `json:"recommendations"`
	Total            int     `json:"total"`
}

// SearchOptions are the structural filters for Search. Empty fields impose no constraint.
type SearchOptions struct {
	Sector     string
	Location   string
	RemoteOnly bool
}

// APIError is an error reported by the service
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s - %s", e.StatusCode, e.Code, e.Message)
}

// Recommend returns ranked internships for the candidate
func (c *Client) Recommend(ctx context.Context, cand Candidate) (*Recommendations, error) {
	if cand.Skills == nil {
		cand.Skills = []string{}
	}
	if cand.Interests == nil {
		cand.Interests = []string{}
	}

	body, err := json.Marshal(cand)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result Recommendations
	if err := c.call(ctx, http.MethodPost, "/api/recommend", bytes.NewReader(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListInternships returns the whole catalog in load order
func (c *Client) ListInternships(ctx context.Context) ([]Internship, error) {
	var result struct {
		Internships []Internship `json:"internships"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/internships", nil, &result); err != nil {
		return nil, err
	}
	return result.Internships, nil
}

// Search filters the catalog by sector, location and remote flag
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]Internship, error) {
	params := url.Values{}
	if opts.Sector != "" {
		params.Set("sector", opts.Sector)
	}
	if opts.Location != "" {
		params.Set("location", opts.Location)
	}
	if opts.RemoteOnly {
		params.Set("remote", "true")
	}

	path := "/api/internships/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result struct {
		Internships []Internship `json:"internships"`
	}
	if err := c.call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Internships, nil
}

// GetInternship retrieves an internship by ID. It returns ErrNotFound when the id is unknown.
func (c *Client) GetInternship(ctx context.Context, id string) (*Internship, error) {
	var result struct {
		Internship *Internship `json:"internship"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/internships/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return result.Internship, nil
}

// Sectors returns the sectors present in the catalog
func (c *Client) Sectors(ctx context.Context) ([]string, error) {
	var result struct {
		Sectors []string `json:"sectors"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/sectors", nil, &result); err != nil {
		return nil, err
	}
	return result.Sectors, nil
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil)
}

// call performs a request and unwraps the response envelope into out
func (c *Client) call(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	status, respBody, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	var result struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		if status >= 400 {
			return &APIError{StatusCode: status, Message: string(respBody)}
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !result.Success {
		apiErr := &APIError{StatusCode: status}
		if result.Error != nil {
			apiErr.Code = result.Error.Code
			apiErr.Message = result.Error.Message
		}
		if status == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

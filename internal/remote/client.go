package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"resumecraft/pkg/models"
)

// Client is a thin REST client for the resume API. Field names on the
// wire may differ from the local document shape; normalization of
// responses is the adapter's job, the client only moves payloads.
type Client struct {
	http *resty.Client
}

// NewClient returns a client for the given base URL. An empty token
// leaves requests unauthenticated.
func NewClient(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

// List fetches the user's remote resume collection.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	var records []Record
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/resumes")
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list resumes: %s", errorMessage(resp, "failed to load resumes"))
	}
	return records, nil
}

// Create stores a new resume and returns the server's record for it.
func (c *Client) Create(ctx context.Context, doc *models.Resume) (*Record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(doc).
		Post("/resumes")
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create resume: %s", errorMessage(resp, "failed to save resume to server"))
	}
	return parseRecord(resp.Body())
}

// Update replaces the resume with the given identity and returns the
// server's record for it.
func (c *Client) Update(ctx context.Context, id string, doc *models.Resume) (*Record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(doc).
		Put("/resumes/" + id)
	if err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("update resume: %s", errorMessage(resp, "failed to save resume to server"))
	}
	return parseRecord(resp.Body())
}

// Delete removes the resume with the given identity.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/resumes/" + id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete resume: %s", errorMessage(resp, "failed to delete resume"))
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("login: %s", errorMessage(resp, "login failed"))
	}
	if out.Token == "" {
		return "", fmt.Errorf("login: server returned no token")
	}
	return out.Token, nil
}

// Register creates an account and returns a bearer token.
func (c *Client) Register(ctx context.Context, email, password, name string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password, "name": name}).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("register: %s", errorMessage(resp, "registration failed"))
	}
	if out.Token == "" {
		return "", fmt.Errorf("register: server returned no token")
	}
	return out.Token, nil
}

// parseRecord reads a record from a response body that may be either
// the bare record or wrapped as {"resume": {...}}.
func parseRecord(body []byte) (*Record, error) {
	var wrapper struct {
		Resume *Record `json:"resume"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Resume != nil {
		return wrapper.Resume, nil
	}

	rec := &Record{}
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, fmt.Errorf("parse server response: %w", err)
	}
	return rec, nil
}

// errorMessage extracts the server's error message from a failed
// response, falling back to a generic message.
func errorMessage(resp *resty.Response, fallback string) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

package siteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// Config configures the REST client.
type Config struct {
	// BaseURL points at the API root, e.g. "https://api.1buy.ai/api".
	BaseURL string
	// Token is the bearer session token for privileged calls.
	Token string
	// Resources maps resource codes onto REST paths. Defaults to the
	// built-in catalog.
	Resources content.ResourceRegistry
	// HTTPClient overrides the default 10s-timeout client.
	HTTPClient *http.Client
}

// Client is the typed REST client shared by the admin shell, the public
// site, and the careers intake.
type Client struct {
	baseURL   string
	token     string
	resources content.ResourceRegistry
	client    *http.Client
}

// New builds a client for the backend contract.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("siteclient: base url is required")
	}
	if cfg.Resources == nil {
		cfg.Resources = content.NewRegistry()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		resources: cfg.Resources,
		client:    httpClient,
	}, nil
}

// SetToken installs the session token issued by Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges the admin password for a session token and installs it.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	payload := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPost, "/admin/login", payload, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", fmt.Errorf("siteclient: login rejected")
	}
	c.token = resp.Token
	return resp.Token, nil
}

// List fetches a resource collection.
func (c *Client) List(ctx context.Context, resource string) ([]content.Record, error) {
	path, err := c.pathFor(resource)
	if err != nil {
		return nil, err
	}
	var records []content.Record
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create posts a new record payload.
func (c *Client) Create(ctx context.Context, resource string, payload map[string]any) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, payload, nil)
}

// Update puts a partial payload for a record, carrying the version stamp the
// caller read so the server can detect conflicting writes.
func (c *Client) Update(ctx context.Context, resource, id string, payload map[string]any, version int64) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	body := map[string]any{"payload": payload, "version": version}
	return c.do(ctx, http.MethodPut, path+"/"+url.PathEscape(id), body, nil)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path+"/"+url.PathEscape(id), nil, nil)
}

// Seed asks the backend to install defaults into an empty collection.
func (c *Client) Seed(ctx context.Context, resource string) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path+"/seed", nil, nil)
}

// Singleton fetches the lone record of a singleton resource.
func (c *Client) Singleton(ctx context.Context, resource string) (content.Record, error) {
	path, err := c.pathFor(resource)
	if err != nil {
		return content.Record{}, err
	}
	var record content.Record
	if err := c.do(ctx, http.MethodGet, path, nil, &record); err != nil {
		return content.Record{}, err
	}
	return record, nil
}

// UpdateSingleton puts a partial payload for a singleton resource.
func (c *Client) UpdateSingleton(ctx context.Context, resource string, payload map[string]any, version int64) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	body := map[string]any{"payload": payload, "version": version}
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// SetStatus drives the status-specific PATCH endpoints.
func (c *Client) SetStatus(ctx context.Context, resource, id, status string) error {
	path, err := c.pathFor(resource)
	if err != nil {
		return err
	}
	target := fmt.Sprintf("%s/%s/status?status=%s", path, url.PathEscape(id), url.QueryEscape(status))
	return c.do(ctx, http.MethodPatch, target, nil, nil)
}

// SetNewsQueryActive toggles a saved news query.
func (c *Client) SetNewsQueryActive(ctx context.Context, id string, active bool) error {
	target := fmt.Sprintf("/news/queries/%s?isActive=%s", url.PathEscape(id), strconv.FormatBool(active))
	return c.do(ctx, http.MethodPatch, target, nil, nil)
}

// SubmitApplication posts a careers application; no session token needed.
func (c *Client) SubmitApplication(ctx context.Context, payload map[string]any) error {
	return c.do(ctx, http.MethodPost, "/careers/applications", payload, nil)
}

// AddReview appends an interview review to an application.
func (c *Client) AddReview(ctx context.Context, applicationID string, review map[string]any) error {
	target := fmt.Sprintf("/careers/applications/%s/reviews", url.PathEscape(applicationID))
	return c.do(ctx, http.MethodPost, target, review, nil)
}

// RemoveReview deletes one review from an application.
func (c *Client) RemoveReview(ctx context.Context, applicationID, reviewID string) error {
	target := fmt.Sprintf("/careers/applications/%s/reviews/%s",
		url.PathEscape(applicationID), url.PathEscape(reviewID))
	return c.do(ctx, http.MethodDelete, target, nil, nil)
}

func (c *Client) pathFor(resource string) (string, error) {
	def, ok := c.resources.Definition(resource)
	if !ok {
		return "", fmt.Errorf("siteclient: unknown resource %q", resource)
	}
	return "/" + def.Path, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, target any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("siteclient: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("siteclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteclient: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("siteclient: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("siteclient: decode response: %w", err)
	}
	return nil
}

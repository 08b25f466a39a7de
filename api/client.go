// ABOUTME: Typed HTTP client for the account-dashboard and stakeholder-details APIs
// ABOUTME: One method per backend operation, every failure normalized to *Error
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

const (
	accountsPath     = "/account-dashboard/"
	stakeholdersPath = "/stakeholder-details/"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the versioned API root, e.g. http://host/api/v1.
	BaseURL string
	// Token, when set, is sent as a Bearer token on every request.
	Token string
	// HTTPClient overrides the transport. Token is ignored when set.
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client issues one HTTP call per backend operation. It holds no state
// besides its configuration.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient creates a gateway client.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.Token != "" {
			src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"})
			httpClient = oauth2.NewClient(context.Background(), src)
		} else {
			httpClient = &http.Client{}
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{baseURL: base, http: httpClient, logger: logger}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListAccounts fetches every account.
func (c *Client) ListAccounts(ctx context.Context) ([]AccountRecord, error) {
	var out []AccountRecord
	err := c.do(ctx, "list accounts", http.MethodGet, accountsPath, nil, &out)
	return out, err
}

// GetAccount fetches a single account.
func (c *Client) GetAccount(ctx context.Context, id string) (*AccountRecord, error) {
	var out AccountRecord
	if err := c.do(ctx, "get account", http.MethodGet, accountsPath+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount posts a new account.
func (c *Client) CreateAccount(ctx context.Context, in AccountCreate) (*AccountRecord, error) {
	var out AccountRecord
	if err := c.do(ctx, "create account", http.MethodPost, accountsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount sends a partial update.
func (c *Client) UpdateAccount(ctx context.Context, id string, in AccountUpdate) (*AccountRecord, error) {
	var out AccountRecord
	if err := c.do(ctx, "update account", http.MethodPut, accountsPath+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes an account.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, "delete account", http.MethodDelete, accountsPath+url.PathEscape(id), nil, nil)
}

// SearchAccountsByUnit lists accounts belonging to a business unit.
func (c *Client) SearchAccountsByUnit(ctx context.Context, unit string) ([]AccountRecord, error) {
	var out []AccountRecord
	err := c.do(ctx, "search accounts", http.MethodGet, accountsPath+"search/unit/"+url.PathEscape(unit), nil, &out)
	return out, err
}

// ListProfiles fetches every strategic stakeholder profile.
func (c *Client) ListProfiles(ctx context.Context) ([]StakeholderDetailRecord, error) {
	var out []StakeholderDetailRecord
	err := c.do(ctx, "list profiles", http.MethodGet, stakeholdersPath, nil, &out)
	return out, err
}

// GetProfile fetches one profile by its id.
func (c *Client) GetProfile(ctx context.Context, id string) (*StakeholderDetailRecord, error) {
	var out StakeholderDetailRecord
	if err := c.do(ctx, "get profile", http.MethodGet, stakeholdersPath+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfilesByAccount fetches the profiles attached to an account.
func (c *Client) ProfilesByAccount(ctx context.Context, accountID string) ([]StakeholderDetailRecord, error) {
	var out []StakeholderDetailRecord
	err := c.do(ctx, "get account profiles", http.MethodGet, stakeholdersPath+"account/"+url.PathEscape(accountID), nil, &out)
	return out, err
}

// CreateProfile posts a new profile.
func (c *Client) CreateProfile(ctx context.Context, in StakeholderDetailCreate) (*StakeholderDetailRecord, error) {
	var out StakeholderDetailRecord
	if err := c.do(ctx, "create profile", http.MethodPost, stakeholdersPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile sends a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, id string, in StakeholderDetailUpdate) (*StakeholderDetailRecord, error) {
	var out StakeholderDetailRecord
	if err := c.do(ctx, "update profile", http.MethodPut, stakeholdersPath+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProfile removes a profile.
func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	return c.do(ctx, "delete profile", http.MethodDelete, stakeholdersPath+url.PathEscape(id), nil, nil)
}

// do performs one round trip. out may be nil when no body is expected.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindMapping, Op: op, Message: fmt.Sprintf("failed to encode request: %v", err), Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return transportError(op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "op", op, "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(op, resp, raw)
		c.logger.Debug("api error", "op", op, "status", resp.StatusCode, "request_id", requestID, "message", apiErr.Message)
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return mappingError(op, resp.StatusCode, err)
	}
	return nil
}

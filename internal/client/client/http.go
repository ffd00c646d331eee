package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
)

const (
	LoginPath    = "/api/auth/login"
	RegisterPath = "/api/auth/register"
	ProfilePath  = "/api/auth/profile"

	// RequestIDHeader correlates client and server logs.
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody bounds how much of a failure body is read for "detail".
	maxErrorBody = 64 << 10
)

// HTTPClient talks to the auth service over REST/JSON.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the service rooted at baseURL, e.g.
// "http://127.0.0.1:8000". A nil httpClient means http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: u, httpClient: httpClient, log: log.With("component", "api_client")}, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, LoginPath, "", creds, &res); err != nil {
		return nil, err
	}
	if !res.Complete() {
		return nil, incomplete(ctx, c.log, LoginPath)
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, RegisterPath, "", creds, &res); err != nil {
		return nil, err
	}
	if !res.Complete() {
		return nil, incomplete(ctx, c.log, RegisterPath)
	}
	return &res, nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, ProfilePath, token, nil, &user); err != nil {
		return nil, err
	}
	if !user.Identified() {
		return nil, incomplete(ctx, c.log, ProfilePath)
	}
	return &user, nil
}

// incomplete reports a 2xx body that decoded but lacks required fields,
// e.g. {} or null.
func incomplete(ctx context.Context, log logging.Logger, path string) error {
	log.Error(ctx, "incomplete response", "path", path)
	return fmt.Errorf("%w: %s: missing token or user", ErrMalformedResponse, path)
}

func (c *HTTPClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

// do performs one exchange. body, when non-nil, is sent as JSON; token,
// when non-empty, is sent as a bearer credential; a 2xx body is decoded
// into out.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request did not complete", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
		log.Info(ctx, "request rejected", "status", resp.StatusCode, "detail", se.Detail)
		return se
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error(ctx, "undecodable response", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	log.Debug(ctx, "request succeeded", "status", resp.StatusCode)
	return nil
}

// readDetail extracts a string "detail" field from a failure body. Bodies
// that are not JSON, or whose detail is not a string (e.g. a list of
// validation errors), yield "".
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}

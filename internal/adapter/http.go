package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-service/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig holds the settings of the HTTP API client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held by
// the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [APIClient]. It POSTs the signup request to
// POST /api/auth/signup. On success the bearer token from the auth response
// is stored via SetToken.
func (h *httpAPIClient) SignUp(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResponse).
		Post("/api/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.AccessToken)
	return authResponse, nil
}

// SignIn implements [APIClient]. It POSTs the credentials to
// POST /api/auth/signin. On success the bearer token from the auth response
// is stored via SetToken.
func (h *httpAPIClient) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&authResponse).
		Post("/api/auth/signin")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.AccessToken)
	return authResponse, nil
}

// Profile implements [APIClient]. It GETs /api/auth/profile with the stored
// bearer token.
func (h *httpAPIClient) Profile(ctx context.Context) (models.PublicUser, error) {
	var publicUser models.PublicUser

	resp, err := h.authorizedRequest(ctx).
		SetResult(&publicUser).
		Get("/api/auth/profile")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return publicUser, nil
}

// Logout implements [APIClient]. It POSTs /api/auth/logout and clears the
// stored token regardless of the outcome.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authorizedRequest(ctx).Post("/api/auth/logout")

	h.SetToken("")

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListUsers implements [APIClient].
func (h *httpAPIClient) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	var users []models.PublicUser

	resp, err := h.authorizedRequest(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [APIClient].
func (h *httpAPIClient) GetUser(ctx context.Context, id string) (models.PublicUser, error) {
	var publicUser models.PublicUser

	resp, err := h.authorizedRequest(ctx).
		SetResult(&publicUser).
		Get("/api/users/" + url.PathEscape(id))
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return publicUser, nil
}

// UpdateUser implements [APIClient].
func (h *httpAPIClient) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.PublicUser, error) {
	var publicUser models.PublicUser

	resp, err := h.authorizedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&publicUser).
		Patch("/api/users/" + url.PathEscape(id))
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return publicUser, nil
}

// DeleteUser implements [APIClient].
func (h *httpAPIClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := h.authorizedRequest(ctx).
		Delete("/api/users/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return mapHTTPError(resp)
}

// authorizedRequest prepares a request carrying the stored bearer token.
func (h *httpAPIClient) authorizedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/common"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

// HTTPClient is the concrete Gateway over net/http. A single fixed timeout
// bounds every call; there is no per-operation cancellation beyond the
// caller's context.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	log            logging.Logger
	accessToken    string
	onUnauthorized func()
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "gateway"),
	}
}

func (c *HTTPClient) SetAccessToken(token string) {
	c.accessToken = token
}

func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do performs one JSON round trip and decodes the response envelope.
// Non-2xx statuses come back as *APIError; transport failures map to
// common.ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, query url.Values) (*models.Envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env models.Envelope
	if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("failed to decode response: %w", decErr)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &env, nil
	}

	msg := env.ErrorMessage()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Global invalidation: drop the credential and notify, then still
		// fail the originating operation.
		c.accessToken = ""
		c.log.Warn("session invalidated by server", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError:
		// Diagnostics only; no special recovery.
		c.log.Error("request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
	}

	return &env, &APIError{Status: resp.StatusCode, Message: msg}
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", req, nil)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{User: env.User, AccessToken: env.AccessToken, RefreshToken: env.RefreshToken}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/register", req, nil)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{User: env.User, AccessToken: env.AccessToken, RefreshToken: env.RefreshToken}, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/ping", nil, nil)
	return err
}

func (c *HTTPClient) UpdateUserInfo(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	env, err := c.do(ctx, http.MethodPost, "/updateUserInfo", req, nil)
	if err != nil {
		return nil, err
	}
	return env.UpdatedUser, nil
}

func (c *HTTPClient) CheckInPack(ctx context.Context, req models.CheckInRequest) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodPost, "/packCheckIn", req, nil)
	if err != nil {
		return nil, err
	}
	return env.Pack, nil
}

func (c *HTTPClient) CheckOutPack(ctx context.Context, req models.CheckOutRequest) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodPost, "/packCheckout", req, nil)
	if err != nil {
		return nil, err
	}
	return env.Pack, nil
}

func (c *HTTPClient) CreateMailPack(ctx context.Context, req models.MailPackRequest) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodPost, "/mailPack", req, nil)
	if err != nil {
		return nil, err
	}
	return env.Pack, nil
}

// CancelMailPack returns the raw envelope: the server replies under its own
// cancelled_mail_pack key and the lifecycle layer deliberately does not
// reconcile against it.
func (c *HTTPClient) CancelMailPack(ctx context.Context, req models.CheckOutRequest) (*models.Envelope, error) {
	return c.do(ctx, http.MethodPost, "/cancelMail", req, nil)
}

func (c *HTTPClient) UpdatePackStatus(ctx context.Context, req models.UpdatePackStatusRequest) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodPost, "/updatePackStatus", req, nil)
	if err != nil {
		return nil, err
	}
	return env.UpdatedPack, nil
}

func (c *HTTPClient) PackDetails(ctx context.Context, packID int64) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodGet, "/getPackDetails/"+strconv.FormatInt(packID, 10), nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Pack, nil
}

func (c *HTTPClient) PacksByUser(ctx context.Context, userID int64) ([]models.Pack, error) {
	env, err := c.do(ctx, http.MethodGet, "/allPacks/"+strconv.FormatInt(userID, 10), nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Packs, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *HTTPClient) AdminPacks(ctx context.Context, status string) ([]models.Pack, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	env, err := c.do(ctx, http.MethodGet, "/admin/packs", nil, query)
	if err != nil {
		return nil, err
	}
	return env.Packs, nil
}

func (c *HTTPClient) AdminUpdatePack(ctx context.Context, req models.AdminUpdatePackRequest) (*models.Pack, error) {
	env, err := c.do(ctx, http.MethodPut, "/admin/pack", req, nil)
	if err != nil {
		return nil, err
	}
	return env.Pack, nil
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, userID int64) error {
	query := url.Values{"user_id": []string{strconv.FormatInt(userID, 10)}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/deleteUser", nil, query)
	return err
}

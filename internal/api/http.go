package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/utender/utender-cli/internal/models"
)

// HTTPClient is the net/http implementation of Client. The base URL points
// at the portal root; the "/api" prefix is added per request.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given portal base URL, e.g.
// "http://localhost:3000". A zero timeout defaults to 15 seconds.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one request against /api/<path>. A non-nil body is JSON
// encoded; a non-nil out receives the decoded 2xx response body. Non-2xx
// statuses are turned into classified errors, reading the backend's
// {message} field when the body carries one.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.APIResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return classify(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/members/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/members/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/forgot-password", nil, map[string]string{"email": email}, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/reset-password", nil, req, nil)
}

// Profile fetches the member profile. The backend expects the member id in
// a POST body rather than in the path.
func (c *HTTPClient) Profile(ctx context.Context, userID int) (*models.User, error) {
	body := map[string]int{"userId": userID}
	var resp models.ProfileResponse
	if err := c.do(ctx, http.MethodPost, "/members/profile", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) UpdateProfileInfo(ctx context.Context, req ProfileInfoUpdate) (*models.User, error) {
	return c.putProfile(ctx, req)
}

func (c *HTTPClient) UpdateProfileCategories(ctx context.Context, req ProfileCategoriesUpdate) (*models.User, error) {
	return c.putProfile(ctx, req)
}

func (c *HTTPClient) putProfile(ctx context.Context, body any) (*models.User, error) {
	var resp models.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/members/profile", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) ListTenders(ctx context.Context, params url.Values) (*models.TendersPage, error) {
	var resp models.TendersPage
	if err := c.do(ctx, http.MethodGet, "/tenders", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Tender(ctx context.Context, id int) (*models.Tender, error) {
	var resp struct {
		Success bool           `json:"success"`
		Data    *models.Tender `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/tenders/"+strconv.Itoa(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) MonthlyStats(ctx context.Context, month, year int) (*models.MonthlyStats, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	var resp struct {
		Success bool                 `json:"success"`
		Data    *models.MonthlyStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/tenders/stats/monthly", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var resp struct {
		Success bool              `json:"success"`
		Data    []models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) ContractingAuthorities(ctx context.Context) ([]models.ContractingAuthority, error) {
	var resp struct {
		Success bool                          `json:"success"`
		Data    []models.ContractingAuthority `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/contracting-authorities", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) NoticeTypes(ctx context.Context) ([]models.NoticeType, error) {
	var resp struct {
		Success bool                `json:"success"`
		Data    []models.NoticeType `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/notice-types", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) Contact(ctx context.Context, req ContactRequest) error {
	var resp models.APIResponse
	if err := c.do(ctx, http.MethodPost, "/contact", nil, req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrRequestFailed, resp.Message)
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)

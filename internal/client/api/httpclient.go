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
	"time"

	"github.com/mlevko/storefront/internal/common"
)

const defaultRequestTimeout = 12 * time.Second

// HTTPClient talks to a real storefront backend over its REST contract.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// mapError converts a non-2xx response into one of the package sentinels.
// 400 bodies are inspected because the backend reports both validation
// failures and duplicate signups with that status.
func (c *HTTPClient) mapError(statusCode int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg := er.Error
	if msg == "" {
		msg = er.Message
	}

	switch statusCode {
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(msg), "exists") {
			return ErrAlreadyExists
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}
		return ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		if msg != "" {
			return fmt.Errorf("server error (status %d): %s", statusCode, msg)
		}
		return fmt.Errorf("server error (status %d)", statusCode)
	}
}

func (c *HTTPClient) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, ErrUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, ErrUnavailable
	}
	return resp.StatusCode, body, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email string, password string) error {

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/signup", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return c.mapError(status, body)
	}

	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password string) (*LoginResult, error) {

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, c.mapError(status, body)
	}

	result := &LoginResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("error decoding login response: %w", err)
	}

	return result, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*Profile, error) {

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, c.mapError(status, body)
	}

	profile := &Profile{}
	if err := json.Unmarshal(body, profile); err != nil {
		return nil, fmt.Errorf("error decoding profile response: %w", err)
	}

	return profile, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, dob string, gender string) error {

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{"dob": dob, "gender": gender})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)

	status, body, err := c.do(req)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return c.mapError(status, body)
	}

	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}

	status, _, err := c.do(req)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return ErrUnavailable
	}

	return nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

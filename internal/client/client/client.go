package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// User is the public user shape returned by sign-up and sign-in.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is what /api/auth/me reports about the current cookie.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Service is the API surface the CLI depends on.
type Service interface {
	SignUp(ctx context.Context, name, email string, password []byte, role string) (*User, error)
	SignIn(ctx context.Context, email string, password []byte) (*User, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*Session, error)
}

// APIClient implements Service over HTTP.
type APIClient struct {
	baseURL string
	http    *http.Client
}

var _ Service = (*APIClient)(nil)

// NewAPIClient returns a client for the API at baseURL with its own cookie
// jar.
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

type userEnvelope struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *APIClient) SignUp(ctx context.Context, name, email string, password []byte, role string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": string(password)}
	if role != "" {
		body["role"] = role
	}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *APIClient) SignIn(ctx context.Context, email string, password []byte) (*User, error) {
	body := map[string]string{"email": email, "password": string(password)}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", body, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *APIClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/sign-out", nil, http.StatusOK, nil)
}

func (c *APIClient) Me(ctx context.Context) (*Session, error) {
	var out struct {
		User *Session `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedAPI, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var env errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)

	apiErr := &APIError{Status: resp.StatusCode, Message: env.Error, Details: env.Details}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		apiErr.kind = ErrConflict
	case resp.StatusCode == http.StatusBadRequest:
		apiErr.kind = ErrInvalidInput
	case resp.StatusCode >= http.StatusInternalServerError:
		apiErr.kind = ErrUnavailable
	default:
		apiErr.kind = ErrUnexpectedAPI
	}
	return apiErr
}

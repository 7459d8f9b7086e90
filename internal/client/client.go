// Package client 调用用户/帖子接口，非 2xx 响应以 *APIError 返回。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/emeka-osuagwu/user-post-ui/internal/model"
)

// APIError 非 2xx 响应
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("failed to %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// UserPage GET /users 的响应
type UserPage struct {
	Data  []*model.User `json:"data"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchUsers 获取分页用户列表
func (c *Client) FetchUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out UserPage
	if err := c.do(ctx, "fetch users", http.MethodGet, "/users?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchUserDetails 获取单个用户
func (c *Client) FetchUserDetails(ctx context.Context, id int64) (*model.User, error) {
	var out struct {
		Data *model.User `json:"data"`
	}
	if err := c.do(ctx, "fetch user details", http.MethodGet, fmt.Sprintf("/user/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateUser 创建用户，返回服务端消息
func (c *Client) CreateUser(ctx context.Context, input model.CreateUserInput) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "create user", http.MethodPost, "/user", input, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeletePost 删除帖子，返回服务端消息
func (c *Client) DeletePost(ctx context.Context, id int64) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "delete the post", http.MethodDelete, fmt.Sprintf("/post/%d", id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to %s: decode response: %w", op, err)
	}
	return nil
}

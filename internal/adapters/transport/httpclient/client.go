package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/todo/internal/domain"
	"github.com/bnema/todo/internal/version"
)

const (
	tasksPath        = "/tasks"
	maxResponseBytes = 1 << 20
)

// ErrUnexpectedStatus is wrapped by every non-2xx answer other than the
// content validation failure.
var ErrUnexpectedStatus = errors.New("unexpected response status")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type addTaskRequest struct {
	Task string `json:"task"`
}

type serverResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	body, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var tasks []string
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	return domain.FromStrings(tasks), nil
}

// Add posts content as a new task and returns the server's acknowledgement.
func (c *Client) Add(ctx context.Context, content string) (string, error) {
	payload, err := json.Marshal(addTaskRequest{Task: content})
	if err != nil {
		return "", fmt.Errorf("encode task: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, payload)
	if err != nil {
		return "", err
	}

	var response serverResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return response.Message, nil
}

func (c *Client) do(ctx context.Context, method string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+tasksPath, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "todo/"+version.Version)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, statusError(response.StatusCode, body)
	}

	return body, nil
}

func statusError(status int, body []byte) error {
	var response serverResponse
	detail := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &response); err == nil && response.Error != "" {
		detail = response.Error
	}

	if status == http.StatusBadRequest && detail == "Task content is required" {
		return fmt.Errorf("server rejected task: %w", domain.ErrTaskContentRequired)
	}

	return fmt.Errorf("%w: status %d: %s", ErrUnexpectedStatus, status, detail)
}

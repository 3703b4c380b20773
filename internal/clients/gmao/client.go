package gmao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

const (
	timeout    = time.Second * 15
	maxErrBody = 64 * 1024
)

// Client is the typed JSON client for the GMAO API. All endpoint paths
// live under <base>/api; credential handling is the round tripper's job.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, rt http.RoundTripper) *Client {
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/api",
		http: &http.Client{
			Timeout:   timeout,
			Transport: rt,
		},
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		j, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		reader = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.NewNetworkError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, entity.NewNetworkError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// upload posts content as a multipart form with the single field "file".
func (c *Client) upload(ctx context.Context, path, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}

	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.NewNetworkError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))

	detail := ""

	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil {
		detail = er.Detail
	}

	if detail == "" {
		detail = strings.TrimSpace(string(raw))
	}

	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	return entity.NewAPIError(classify(resp), resp.StatusCode, detail)
}

func classify(resp *http.Response) entity.ErrorKind {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if isAuthEndpoint(resp.Request.URL.Path) {
			return entity.KindAuthRejected
		}

		return entity.KindAuthExpired
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return entity.KindValidation
	}

	return entity.KindServer
}

func isAuthEndpoint(path string) bool {
	return strings.HasSuffix(path, "/api/auth/login") || strings.HasSuffix(path, "/api/auth/register")
}

func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	q := url.Values{}

	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}

	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}

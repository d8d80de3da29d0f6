package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinema_storefront/config"
)

// Client là cổng dữ liệu duy nhất tới backend từ phía storefront.
// Không retry: lỗi transport/HTTP trả nguyên về caller để tự phân nhánh theo status.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: strings.TrimRight(config.Config("API_BASE_URL"), "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do gửi request, gắn bearer token khi có, và unwrap envelope {"value": ...}
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body any, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(unwrap(data), out)
}

// unwrap bóc payload khỏi envelope {"value": ...} nếu có, không thì trả nguyên body
func unwrap(data []byte) []byte {
	var env struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.Value) > 0 {
		return env.Value
	}
	return data
}

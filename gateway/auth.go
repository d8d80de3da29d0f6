package gateway

import (
	"context"
	"net/http"

	"cinema_storefront/model"
)

func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var out model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/Authorization/login", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/Authorization/register", "", nil, body, nil)
}

// GetUserInfo lấy profile đã xác thực bằng token của backend
func (c *Client) GetUserInfo(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/User/info", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

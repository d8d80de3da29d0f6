package gateway

import (
	"context"
	"net/http"

	"cinema_storefront/model"
)

func (c *Client) GetTheaters(ctx context.Context) ([]model.Theater, error) {
	var out []model.Theater
	if err := c.do(ctx, http.MethodGet, "/Theater", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

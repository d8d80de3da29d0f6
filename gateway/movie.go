package gateway

import (
	"context"
	"net/http"
	"net/url"

	"cinema_storefront/model"
)

func (c *Client) GetMovies(ctx context.Context, params url.Values) ([]model.Movie, error) {
	var out []model.Movie
	if err := c.do(ctx, http.MethodGet, "/Movie", "", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
	var out model.Movie
	if err := c.do(ctx, http.MethodGet, "/Movie/"+id, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchMovies(ctx context.Context, params url.Values) ([]model.Movie, error) {
	var out []model.Movie
	if err := c.do(ctx, http.MethodGet, "/Movie/search", "", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMovie(ctx context.Context, token string, movie model.Movie) (*model.Movie, error) {
	var out model.Movie
	if err := c.do(ctx, http.MethodPost, "/Movie", token, nil, movie, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package gateway

import (
	"context"
	"net/http"
	"net/url"

	"cinema_storefront/model"
)

func (c *Client) GetShowtimes(ctx context.Context, params url.Values) ([]model.Showtime, error) {
	var out []model.Showtime
	if err := c.do(ctx, http.MethodGet, "/Showtime", "", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetShowtimesByMovie(ctx context.Context, movieId string) ([]model.Showtime, error) {
	var out []model.Showtime
	if err := c.do(ctx, http.MethodGet, "/Showtime/movie/"+movieId, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAvailableShowtimes(ctx context.Context, movieId, showDate string) ([]model.Showtime, error) {
	params := url.Values{}
	if showDate != "" {
		params.Set("showDate", showDate)
	}
	var out []model.Showtime
	if err := c.do(ctx, http.MethodGet, "/Showtime/available/"+movieId, "", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetShowtimeSeats(ctx context.Context, id string) (*model.SeatAvailability, error) {
	var out model.SeatAvailability
	if err := c.do(ctx, http.MethodGet, "/Showtime/"+id+"/seats", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

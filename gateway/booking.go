package gateway

import (
	"context"
	"net/http"
	"net/url"

	"cinema_storefront/model"
)

// Book đặt vé trên backend: body là mảng mã ghế, userId/showtimeId đi theo query
func (c *Client) Book(ctx context.Context, token, userId, showtimeId string, seatNumbers []string) (*model.BookingResponseDto, error) {
	params := url.Values{}
	params.Set("userId", userId)
	params.Set("showtimeId", showtimeId)

	var out model.BookingResponseDto
	if err := c.do(ctx, http.MethodPost, "/Booking/book", token, params, seatNumbers, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBookingsByUser(ctx context.Context, token, userId string) ([]model.BookingResponseDto, error) {
	var out []model.BookingResponseDto
	if err := c.do(ctx, http.MethodGet, "/Booking/user/"+userId, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBookingByReference(ctx context.Context, token, reference string) (*model.BookingResponseDto, error) {
	var out model.BookingResponseDto
	if err := c.do(ctx, http.MethodGet, "/Booking/reference/"+reference, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

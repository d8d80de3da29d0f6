package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema_storefront/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPromotions(t *testing.T) {
	app := fiber.New()
	app.Get("/promotions", GetPromotions)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/promotions", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string            `json:"status"`
		Data   []model.Promotion `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 3)
	assert.Equal(t, "WEEKEND50", body.Data[0].Code)
}

func TestGetPromotionByCode(t *testing.T) {
	app := fiber.New()
	app.Get("/promotions/:code", GetPromotionByCode)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/promotions/STUDENT30", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/promotions/NOPE", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

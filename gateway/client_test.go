package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema_storefront/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &gateway.Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestClient_UnwrapsValueEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Movie", r.URL.Path)
		w.Write([]byte(`{"value":[{"id":"m1","title":"Người Dơi"}]}`))
	})

	movies, err := client.GetMovies(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "m1", movies[0].Id)
	assert.Equal(t, "Người Dơi", movies[0].Title)
}

func TestClient_PlainBodyWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"m2","title":"Đặc Vụ Ngầm"}]`))
	})

	movies, err := client.GetMovies(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "m2", movies[0].Id)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"u1","email":"an@example.com"}`))
	})

	user, err := client.GetUserInfo(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.Id)
}

func TestClient_MapsErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"title":"Validation failed","errors":{"password":["quá ngắn","quá yếu"],"email":["không hợp lệ"]}}`))
	})

	err := client.Register(context.Background(), "An", "bad", "1")
	require.Error(t, err)

	apiErr, ok := err.(*gateway.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Validation failed", apiErr.Message)
	// flatten theo tên field, giữ thứ tự message trong field
	assert.Equal(t, []string{"không hợp lệ", "quá ngắn", "quá yếu"}, apiErr.FieldMessages())
	assert.True(t, gateway.IsStatus(err, http.StatusBadRequest))
}

func TestClient_BookSendsSeatArrayAndQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Booking/book", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		assert.Equal(t, "st-1", r.URL.Query().Get("showtimeId"))
		w.Write([]byte(`{"id":"bk-1","bookingReference":"REF-9"}`))
	})

	resp, err := client.Book(context.Background(), "tok", "u1", "st-1", []string{"A1", "A2"})
	require.NoError(t, err)
	assert.Equal(t, "REF-9", resp.BookingReference)
}

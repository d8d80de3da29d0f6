package helper_test

import (
	"context"
	"testing"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, movies []model.Movie) {
	t.Helper()
	helper.SetCatalog(movies)
	t.Cleanup(func() { helper.SetCatalog(nil) })
}

func sampleCatalog() []model.Movie {
	return []model.Movie{
		{Id: "1", Title: "Người Dơi", Description: "Hiệp sĩ bóng đêm trở lại", Genre: "Hành động, Tội phạm", Rating: 9.0},
		{Id: "2", Title: "Vùng Đất Linh Hồn", Description: "Phim hoạt hình Ghibli", Genre: "Hoạt hình, Phiêu lưu", Rating: 8.6},
		{Id: "3", Title: "Tay Đua Tốc Độ", Description: "Đua xe đường phố", Genre: "Hành động", Rating: 6.8},
		{Id: "4", Title: "Chuyện Tình Mùa Thu", Description: "Lãng mạn nhẹ nhàng", Genre: "Tình cảm", Rating: 7.4},
		{Id: "5", Title: "Đặc Vụ Ngầm", Description: "Điệp viên hành động", Genre: "Hành động, Giật gân", Rating: 8.1},
		{Id: "6", Title: "Ngôi Nhà Ma", Description: "Kinh dị tâm lý", Genre: "Kinh dị", Rating: 7.9},
	}
}

func TestSearchMovies(t *testing.T) {
	seedCatalog(t, sampleCatalog())

	// query rỗng khớp tất cả
	assert.Len(t, helper.SearchMovies("", ""), 6)

	results := helper.SearchMovies("người dơi", "")
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].Id)

	// khớp cả description
	results = helper.SearchMovies("ghibli", "")
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].Id)

	// lọc theo thể loại
	results = helper.SearchMovies("", "hành động")
	assert.Len(t, results, 3)

	assert.Empty(t, helper.SearchMovies("không tồn tại", ""))
}

func TestPopularMovies(t *testing.T) {
	seedCatalog(t, sampleCatalog())

	results := helper.PopularMovies()
	require.Len(t, results, 3)
	for _, movie := range results {
		assert.GreaterOrEqual(t, movie.Rating, 8.0)
	}
}

func TestMovieBySlug(t *testing.T) {
	seedCatalog(t, sampleCatalog())

	movie, ok := helper.MovieBySlug("nguoi-doi")
	require.True(t, ok)
	assert.Equal(t, "1", movie.Id)

	_, ok = helper.MovieBySlug("khong-co")
	assert.False(t, ok)
}

func TestToMovieViews(t *testing.T) {
	views := helper.ToMovieViews([]model.Movie{{Id: "1", Title: "Người Dơi"}})
	require.Len(t, views, 1)
	assert.Equal(t, "nguoi-doi", views[0].Slug)
}

func TestRecommendedMovies_FallbackFirstFour(t *testing.T) {
	seedCatalog(t, sampleCatalog())
	useMemStore(t)

	results := helper.RecommendedMovies(context.Background(), "")
	require.Len(t, results, 4)
	assert.Equal(t, "1", results[0].Id)
	assert.Equal(t, "4", results[3].Id)
}

func TestRecommendedMovies_ByGenreHistory(t *testing.T) {
	seedCatalog(t, sampleCatalog())
	useMemStore(t)
	ctx := context.Background()

	// đã đặt 2 phim hành động
	require.NoError(t, helper.AppendBooking(ctx, "u1", model.Booking{Id: "b1", MovieId: "1", Status: constants.BookingConfirmed}))
	require.NoError(t, helper.AppendBooking(ctx, "u1", model.Booking{Id: "b2", MovieId: "3", Status: constants.BookingConfirmed}))

	results := helper.RecommendedMovies(ctx, "u1")

	ids := make([]string, 0, len(results))
	for _, movie := range results {
		ids = append(ids, movie.Id)
	}
	// phim đã đặt bị loại, còn lại các phim cùng thể loại nổi bật
	assert.NotContains(t, ids, "1")
	assert.NotContains(t, ids, "3")
	assert.Contains(t, ids, "5")
	assert.NotContains(t, ids, "2")
	assert.NotContains(t, ids, "6")
}

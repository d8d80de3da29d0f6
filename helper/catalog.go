package helper

import (
	"context"
	"log"
	"strings"
	"sync"

	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gosimple/slug"
)

// Catalog phim giữ trong bộ nhớ, là projection đọc của backend —
// không đồng bộ chặt, làm mới định kỳ và khi khởi động.
var (
	catalogMu sync.RWMutex
	catalog   []model.Movie

	// cache suất chiếu theo id, để trừ ghế lạc quan sau khi đặt vé
	showtimeMu    sync.RWMutex
	showtimeCache = make(map[string]*model.Showtime)
)

// SetCatalog thay toàn bộ danh sách phim (refresh và test dùng chung)
func SetCatalog(movies []model.Movie) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = movies
}

func Movies() []model.Movie {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	out := make([]model.Movie, len(catalog))
	copy(out, catalog)
	return out
}

// RefreshCatalog kéo danh sách phim mới nhất từ backend
func RefreshCatalog(ctx context.Context) error {
	movies, err := Remote.GetMovies(ctx, nil)
	if err != nil {
		return err
	}
	SetCatalog(movies)
	log.Printf("catalog refreshed: %d movies", len(movies))
	return nil
}

// SearchMovies lọc catalog: query khớp substring không phân biệt hoa thường
// với title hoặc description, genre (nếu có) phải nằm trong chuỗi thể loại.
// Query rỗng + genre rỗng do caller xử lý (trả nguyên catalog).
func SearchMovies(query, genre string) []model.Movie {
	query = strings.ToLower(query)
	genre = strings.ToLower(genre)

	var results []model.Movie
	for _, movie := range Movies() {
		matchesSearch := strings.Contains(strings.ToLower(movie.Title), query) ||
			strings.Contains(strings.ToLower(movie.Description), query)
		matchesGenre := genre == "" || strings.Contains(strings.ToLower(movie.Genre), genre)
		if matchesSearch && matchesGenre {
			results = append(results, movie)
		}
	}
	return results
}

// PopularMovies: backend không có cờ popular nên lấy theo rating
func PopularMovies() []model.Movie {
	var results []model.Movie
	for _, movie := range Movies() {
		if movie.Rating >= 8 {
			results = append(results, movie)
		}
	}
	return results
}

func MovieBySlug(movieSlug string) (*model.Movie, bool) {
	for _, movie := range Movies() {
		if slug.Make(movie.Title) == movieSlug {
			return &movie, true
		}
	}
	return nil, false
}

func MovieById(id string) (*model.Movie, bool) {
	for _, movie := range Movies() {
		if movie.Id == id {
			return &movie, true
		}
	}
	return nil, false
}

// MovieView gắn slug cho đường dẫn chi tiết
func ToMovieViews(movies []model.Movie) []model.MovieView {
	views := make([]model.MovieView, 0, len(movies))
	for _, movie := range movies {
		views = append(views, model.MovieView{Movie: movie, Slug: slug.Make(movie.Title)})
	}
	return views
}

// RecommendedMovies gợi ý theo tần suất thể loại trong lịch sử đặt vé.
// Chưa đăng nhập hoặc chưa đặt vé nào → 4 phim đầu catalog, giữ nguyên thứ tự.
func RecommendedMovies(ctx context.Context, userId string) []model.Movie {
	movies := Movies()

	var bookings []model.Booking
	if userId != "" {
		bookings, _ = ListBookings(ctx, userId)
	}
	if len(bookings) == 0 {
		if len(movies) > 4 {
			return movies[:4]
		}
		return movies
	}

	// Tần suất thể loại của các phim đã đặt, nhớ thứ tự gặp đầu tiên để phá hòa
	bookedIds := make(map[string]bool)
	genreCount := make(map[string]int)
	var genreOrder []string

	for _, booking := range bookings {
		movie, ok := movieById(movies, booking.MovieId)
		if !ok {
			continue
		}
		bookedIds[movie.Id] = true
		for _, genre := range splitGenres(movie.Genre) {
			if _, seen := genreCount[genre]; !seen {
				genreOrder = append(genreOrder, genre)
			}
			genreCount[genre]++
		}
	}

	topGenres := topGenresByCount(genreCount, genreOrder, 3)

	var results []model.Movie
	for _, movie := range movies {
		if bookedIds[movie.Id] {
			continue
		}
		if !sharesGenre(movie.Genre, topGenres) {
			continue
		}
		results = append(results, movie)
		if len(results) == 6 {
			break
		}
	}
	return results
}

func movieById(movies []model.Movie, id string) (model.Movie, bool) {
	for _, movie := range movies {
		if movie.Id == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

func splitGenres(genre string) []string {
	parts := strings.Split(genre, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// topGenresByCount: đếm giảm dần, hòa thì theo thứ tự gặp đầu tiên
func topGenresByCount(counts map[string]int, order []string, n int) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)
	// sort ổn định theo count giảm dần, order đã là thứ tự phá hòa
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func sharesGenre(genre string, topGenres []string) bool {
	for _, g := range splitGenres(genre) {
		if Contains(topGenres, g) {
			return true
		}
	}
	return false
}

// MovieShowtimes lấy suất chiếu của phim qua gateway, chuẩn hóa ngày giờ hiển thị
func MovieShowtimes(ctx context.Context, movieId string) ([]model.Showtime, error) {
	showtimes, err := Remote.GetShowtimesByMovie(ctx, movieId)
	if err != nil {
		return nil, err
	}
	for i := range showtimes {
		normalizeShowtime(&showtimes[i])
		cacheShowtime(showtimes[i])
	}
	return showtimes, nil
}

func normalizeShowtime(s *model.Showtime) {
	s.Date = utils.NormalizeDate(s.Date)
	s.StartTime = utils.NormalizeTime(s.StartTime)
}

func cacheShowtime(s model.Showtime) {
	showtimeMu.Lock()
	defer showtimeMu.Unlock()
	copied := s
	showtimeCache[s.Id] = &copied
}

func CachedShowtime(id string) (*model.Showtime, bool) {
	showtimeMu.RLock()
	defer showtimeMu.RUnlock()
	s, ok := showtimeCache[id]
	if !ok {
		return nil, false
	}
	copied := *s
	return &copied, true
}

// DecrementAvailableSeats trừ ghế lạc quan sau khi đặt vé thành công.
// Đây là điều chỉnh cục bộ, không phải reservation được server xác nhận.
func DecrementAvailableSeats(id string, n int) {
	showtimeMu.Lock()
	defer showtimeMu.Unlock()
	if s, ok := showtimeCache[id]; ok {
		s.AvailableSeats -= n
		if s.AvailableSeats < 0 {
			s.AvailableSeats = 0
		}
	}
}

package model

// Movie theo đúng shape DTO của backend
type Movie struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Genre       string  `json:"genre"`
	Director    string  `json:"director"`
	Cast        string  `json:"cast"`
	ReleaseDate string  `json:"releaseDate"`
	PosterUrl   string  `json:"posterUrl"`
	TrailerUrl  string  `json:"trailerUrl"`
	Rating      float64 `json:"rating"`
	Language    string  `json:"language,omitempty"`
}

// MovieView là Movie kèm slug cho đường dẫn chi tiết phim
type MovieView struct {
	Movie
	Slug string `json:"slug"`
}

type MovieSearchParams struct {
	Query string `query:"q"`
	Genre string `query:"genre"`
}

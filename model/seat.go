package model

const (
	SeatRegular = "regular"
	SeatPremium = "premium"
	SeatVIP     = "vip"
)

// Seat chỉ tồn tại phía storefront, sinh mới mỗi lần mở màn chọn ghế
type Seat struct {
	Id          string  `json:"id"`
	Row         string  `json:"row"`
	Number      int     `json:"number"`
	IsAvailable bool    `json:"isAvailable"`
	IsSelected  bool    `json:"isSelected"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
}

type SeatGrid struct {
	ShowtimeId string  `json:"showtimeId"`
	Rows       int     `json:"rows"`
	SeatsByRow int     `json:"seatsPerRow"`
	BasePrice  float64 `json:"basePrice"`
	Seats      []Seat  `json:"seats"`
}
